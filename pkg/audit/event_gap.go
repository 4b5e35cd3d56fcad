package audit

import "fmt"

// GapStatusEvent represents a gap item remediation status transition.
type GapStatusEvent struct {
	GapID        int64
	FromStatus   string
	ToStatus     string
	Success      bool
	ErrorMessage string
}

func (e GapStatusEvent) MessageID() string {
	return "gap-status"
}

func (e GapStatusEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("transitioned gap %d from %s to %s", e.GapID, e.FromStatus, e.ToStatus)
	}
	msg := fmt.Sprintf("failed to transition gap %d to %s", e.GapID, e.ToStatus)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GapStatusEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e GapStatusEvent) Facility() int {
	return FacilityAudit
}

func (e GapStatusEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"gap":  fmt.Sprintf("%d", e.GapID),
			"from": e.FromStatus,
			"to":   e.ToStatus,
		},
		SDIDAction: {
			"operation": "gap-status",
			"result":    resultOf(e.Success),
		},
	}
}
