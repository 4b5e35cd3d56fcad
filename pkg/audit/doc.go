// Package audit provides audit logging for complymap operations.
//
// This package implements structured audit logging in RFC5424 syslog
// format for the operations a compliance reviewer cares about: engine
// computation runs, governance rule changes and propagation, hierarchy
// edits, mapping writes, and gap status transitions.
//
// # Event Types
//
//   - ComputationEvent: coverage, transitive-benefit, and gap-analysis runs
//   - GovernanceChangeEvent / GovernancePropagationEvent: rule edits and
//     explicit push-down to hierarchical subsidiaries
//   - HierarchyEditEvent: parent reassignments, including rejected cycles
//   - MappingWriteEvent: mapping edits, including rejected strengths
//   - GapStatusEvent: remediation status transitions
//
// # Usage
//
//	audit.Log(audit.ComputationEvent{
//	    Kind:            "coverage",
//	    SourceFramework: "iso27001",
//	    TargetFramework: "nist-csf",
//	    Success:         true,
//	})
//
// Events go to stdout and, when AUDIT_DATABASE_URL is set, to the audit
// database.
package audit
