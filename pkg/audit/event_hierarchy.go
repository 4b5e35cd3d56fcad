package audit

import "fmt"

// HierarchyEditEvent represents a tenant parent reassignment. Rejected
// cyclic edits are logged loudly.
type HierarchyEditEvent struct {
	TenantCode    string
	NewParentCode string
	Success       bool
	CycleRejected bool
	ErrorMessage  string
}

func (e HierarchyEditEvent) MessageID() string {
	return "hierarchy"
}

func (e HierarchyEditEvent) Message() string {
	parent := e.NewParentCode
	if parent == "" {
		parent = "(none)"
	}
	if e.Success {
		return fmt.Sprintf("reparented tenant %s under %s", e.TenantCode, parent)
	}
	if e.CycleRejected {
		return fmt.Sprintf("rejected cyclic reparent of tenant %s under %s", e.TenantCode, parent)
	}
	msg := fmt.Sprintf("failed to reparent tenant %s under %s", e.TenantCode, parent)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e HierarchyEditEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	if e.CycleRejected {
		return SeverityError
	}
	return SeverityWarning
}

func (e HierarchyEditEvent) Facility() int {
	return FacilityAudit
}

func (e HierarchyEditEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDTenant: {
			"code": e.TenantCode,
		},
		SDIDAction: {
			"operation": "reparent",
			"result":    resultOf(e.Success),
		},
	}
	if e.NewParentCode != "" {
		sd[SDIDTenant]["parent"] = e.NewParentCode
	}
	if e.CycleRejected {
		sd[SDIDAction]["rejected"] = "cycle"
	}
	return sd
}
