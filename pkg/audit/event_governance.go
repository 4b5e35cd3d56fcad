package audit

import "fmt"

// GovernanceChangeEvent represents a governance rule create or update.
type GovernanceChangeEvent struct {
	TenantCode      string
	Scope           string
	ScopeID         string
	GovernanceModel string
	Success         bool
	ErrorMessage    string
}

func (e GovernanceChangeEvent) MessageID() string {
	return "governance"
}

func (e GovernanceChangeEvent) Message() string {
	scope := e.Scope
	if e.ScopeID != "" {
		scope = fmt.Sprintf("%s/%s", e.Scope, e.ScopeID)
	}
	if e.Success {
		return fmt.Sprintf("set governance of tenant %s for scope %s to %s", e.TenantCode, scope, e.GovernanceModel)
	}
	msg := fmt.Sprintf("failed to set governance of tenant %s for scope %s", e.TenantCode, scope)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GovernanceChangeEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e GovernanceChangeEvent) Facility() int {
	return FacilityAudit
}

func (e GovernanceChangeEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDTenant: {
			"code": e.TenantCode,
		},
		SDIDGovernance: {
			"scope": e.Scope,
			"model": e.GovernanceModel,
		},
		SDIDAction: {
			"operation": "set-governance",
			"result":    resultOf(e.Success),
		},
	}
	if e.ScopeID != "" {
		sd[SDIDGovernance]["scope_id"] = e.ScopeID
	}
	return sd
}

// GovernancePropagationEvent represents an explicit push-down of a
// parent's rule to its hierarchical subsidiaries.
type GovernancePropagationEvent struct {
	TenantCode   string
	Scope        string
	ScopeID      string
	UpdatedCount int
	Success      bool
	ErrorMessage string
}

func (e GovernancePropagationEvent) MessageID() string {
	return "governance-propagate"
}

func (e GovernancePropagationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("propagated governance of tenant %s for scope %s to %d subsidiaries", e.TenantCode, e.Scope, e.UpdatedCount)
	}
	msg := fmt.Sprintf("failed to propagate governance of tenant %s for scope %s", e.TenantCode, e.Scope)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GovernancePropagationEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e GovernancePropagationEvent) Facility() int {
	return FacilityAudit
}

func (e GovernancePropagationEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDTenant: {
			"code": e.TenantCode,
		},
		SDIDGovernance: {
			"scope":   e.Scope,
			"updated": fmt.Sprintf("%d", e.UpdatedCount),
		},
		SDIDAction: {
			"operation": "propagate-governance",
			"result":    resultOf(e.Success),
		},
	}
	if e.ScopeID != "" {
		sd[SDIDGovernance]["scope_id"] = e.ScopeID
	}
	return sd
}
