package audit

import "fmt"

// MappingWriteEvent represents a mapping edge create or edit. Writes
// rejected for out-of-range strength are logged as failures.
type MappingWriteEvent struct {
	SourceRequirement string
	TargetRequirement string
	MappingPercentage float64
	MappingType       string
	Bidirectional     bool
	Success           bool
	StrengthRejected  bool
	ErrorMessage      string
}

func (e MappingWriteEvent) MessageID() string {
	return "mapping"
}

func (e MappingWriteEvent) Message() string {
	edge := fmt.Sprintf("%s -> %s at %.1f%%", e.SourceRequirement, e.TargetRequirement, e.MappingPercentage)
	if e.Success {
		return "created mapping " + edge
	}
	if e.StrengthRejected {
		return "rejected mapping " + edge + ": strength out of range"
	}
	msg := "failed to create mapping " + edge
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MappingWriteEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e MappingWriteEvent) Facility() int {
	return FacilityAudit
}

func (e MappingWriteEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"source":     e.SourceRequirement,
			"target":     e.TargetRequirement,
			"percentage": fmt.Sprintf("%.1f", e.MappingPercentage),
			"type":       e.MappingType,
		},
		SDIDAction: {
			"operation": "map",
			"result":    resultOf(e.Success),
		},
	}
	if e.Bidirectional {
		sd[SDIDSubject]["bidirectional"] = "true"
	}
	if e.StrengthRejected {
		sd[SDIDAction]["rejected"] = "strength"
	}
	return sd
}
