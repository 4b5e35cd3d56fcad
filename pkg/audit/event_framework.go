package audit

import "fmt"

// FrameworkLoadEvent represents a catalog load of a framework and its
// requirements.
type FrameworkLoadEvent struct {
	FrameworkCode    string
	RequirementCount int
	Success          bool
	ErrorMessage     string
}

func (e FrameworkLoadEvent) MessageID() string {
	return "framework-load"
}

func (e FrameworkLoadEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("loaded framework %s with %d requirements", e.FrameworkCode, e.RequirementCount)
	}
	msg := fmt.Sprintf("failed to load framework %s", e.FrameworkCode)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e FrameworkLoadEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e FrameworkLoadEvent) Facility() int {
	return FacilityAudit
}

func (e FrameworkLoadEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDFramework: {
			"code":         e.FrameworkCode,
			"requirements": fmt.Sprintf("%d", e.RequirementCount),
		},
		SDIDAction: {
			"operation": "framework-load",
			"result":    resultOf(e.Success),
		},
	}
}
