package compliance

import (
	"sort"

	"github.com/complymap/complymap/pkg/model"
)

// DefaultConfidenceReviewThreshold flags low-confidence gaps for manual
// review. Configurable per deployment.
const DefaultConfidenceReviewThreshold = 60

var priorityRank = map[string]int{
	model.PriorityCritical: 0,
	model.PriorityHigh:     1,
	model.PriorityMedium:   2,
	model.PriorityLow:      3,
}

// GapOutstanding reports whether a gap still counts toward outstanding
// remediation work. Resolved and wont_fix items stay retrievable but are
// out of scope for work aggregates.
func GapOutstanding(status string) bool {
	return status != model.GapStatusResolved && status != model.GapStatusWontFix
}

// SortGaps orders gap items by priority (critical first), then by
// percentage impact descending within a priority.
func SortGaps(items []model.GapItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := priorityRank[items[i].Priority], priorityRank[items[j].Priority]
		if ri != rj {
			return ri < rj
		}
		return items[i].PercentageImpact > items[j].PercentageImpact
	})
}

// OpenHighPriorityGaps filters to outstanding items of critical or high
// priority, ordered like SortGaps.
func OpenHighPriorityGaps(items []model.GapItem) []model.GapItem {
	out := []model.GapItem{}
	for _, item := range items {
		if !GapOutstanding(item.Status) {
			continue
		}
		if item.Priority != model.PriorityCritical && item.Priority != model.PriorityHigh {
			continue
		}
		out = append(out, item)
	}
	SortGaps(out)
	return out
}

// GapPrioritySummary aggregates outstanding work for one priority tier.
type GapPrioritySummary struct {
	Priority         string `json:"priority"`
	Count            int    `json:"count"`
	TotalEffort      int    `json:"total_estimated_effort"`
	TotalImpact      int    `json:"total_percentage_impact"`
	MissingEstimates int    `json:"missing_effort_estimates"`
}

// SummarizeGaps groups outstanding gap counts and total estimated
// remediation effort by priority, critical first. Resolved and wont_fix
// items are excluded entirely.
func SummarizeGaps(items []model.GapItem) []GapPrioritySummary {
	byPriority := map[string]*GapPrioritySummary{}
	for _, item := range items {
		if !GapOutstanding(item.Status) {
			continue
		}
		s, ok := byPriority[item.Priority]
		if !ok {
			s = &GapPrioritySummary{Priority: item.Priority}
			byPriority[item.Priority] = s
		}
		s.Count++
		s.TotalImpact += item.PercentageImpact
		if item.EstimatedEffort != nil {
			s.TotalEffort += *item.EstimatedEffort
		} else {
			s.MissingEstimates++
		}
	}

	out := make([]GapPrioritySummary, 0, len(byPriority))
	for _, s := range byPriority {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

// LowConfidenceGaps flags items still in identified status whose
// confidence falls below the review threshold.
func LowConfidenceGaps(items []model.GapItem, threshold int) []model.GapItem {
	out := []model.GapItem{}
	for _, item := range items {
		if item.Status == model.GapStatusIdentified && item.Confidence < threshold {
			out = append(out, item)
		}
	}
	SortGaps(out)
	return out
}
