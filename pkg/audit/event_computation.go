package audit

import "fmt"

// ComputationEvent represents one engine computation run: a coverage,
// transitive-benefit, or gap-analysis calculation.
type ComputationEvent struct {
	Kind            string // "coverage", "transitive", "gap-analysis"
	SourceFramework string
	TargetFramework string
	TenantCode      string
	Success         bool
	ErrorMessage    string
}

func (e ComputationEvent) MessageID() string {
	return e.Kind
}

func (e ComputationEvent) Message() string {
	subject := "across all mappings"
	if e.SourceFramework != "" || e.TargetFramework != "" {
		subject = fmt.Sprintf("%s -> %s", e.SourceFramework, e.TargetFramework)
	}
	if e.TenantCode != "" {
		subject = fmt.Sprintf("%s for tenant %s", subject, e.TenantCode)
	}
	if e.Success {
		return fmt.Sprintf("computed %s %s", e.Kind, subject)
	}
	msg := fmt.Sprintf("failed to compute %s %s", e.Kind, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ComputationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ComputationEvent) Facility() int {
	return FacilityAudit
}

func (e ComputationEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAction: {
			"operation": e.Kind,
			"result":    resultOf(e.Success),
		},
	}
	if e.SourceFramework != "" || e.TargetFramework != "" {
		sd[SDIDFramework] = map[string]string{
			"source": e.SourceFramework,
			"target": e.TargetFramework,
		}
	}
	if e.TenantCode != "" {
		sd[SDIDTenant] = map[string]string{"code": e.TenantCode}
	}
	return sd
}

func resultOf(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
