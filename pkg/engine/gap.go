package engine

import (
	"fmt"

	"github.com/complymap/complymap/pkg/audit"
	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/model"
)

// GapsForMapping returns a mapping's gap items ordered by priority, then
// percentage impact descending.
func (e *Engine) GapsForMapping(mappingID int64) ([]model.GapItem, error) {
	if _, err := e.stores.Mappings.FetchMapping(mappingID); err != nil {
		return nil, fmt.Errorf("mapping %d: %w", mappingID, err)
	}
	items, err := e.stores.Gaps.ListGapsForMapping(mappingID)
	if err != nil {
		return nil, err
	}
	compliance.SortGaps(items)
	return items, nil
}

// CreateGap records a new gap item against a mapping.
func (e *Engine) CreateGap(gap *model.GapItem) error {
	if _, err := e.stores.Mappings.FetchMapping(gap.MappingID); err != nil {
		return fmt.Errorf("mapping %d: %w", gap.MappingID, err)
	}
	if gap.Status == "" {
		gap.Status = model.GapStatusIdentified
	}
	return e.stores.Gaps.CreateGap(gap)
}

// TransitionGap moves a gap item to a new remediation status.
func (e *Engine) TransitionGap(id int64, status string) (*model.GapItem, error) {
	gap, err := e.stores.Gaps.FetchGap(id)
	if err != nil {
		return nil, fmt.Errorf("gap %d: %w", id, err)
	}

	from := gap.Status
	if err := e.stores.Gaps.UpdateGapStatus(id, status); err != nil {
		audit.Log(audit.GapStatusEvent{
			GapID:        id,
			FromStatus:   from,
			ToStatus:     status,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}
	gap.Status = status

	audit.Log(audit.GapStatusEvent{
		GapID:      id,
		FromStatus: from,
		ToStatus:   status,
		Success:    true,
	})
	return gap, nil
}

// OpenHighPriorityGaps lists outstanding critical and high priority gaps
// across all mappings.
func (e *Engine) OpenHighPriorityGaps() ([]model.GapItem, error) {
	items, err := e.stores.Gaps.ListGaps()
	if err != nil {
		return nil, err
	}
	return compliance.OpenHighPriorityGaps(items), nil
}

// GapSummary aggregates outstanding gap counts and remediation effort by
// priority.
func (e *Engine) GapSummary() ([]compliance.GapPrioritySummary, error) {
	items, err := e.stores.Gaps.ListGaps()
	if err != nil {
		audit.Log(audit.ComputationEvent{Kind: "gap-analysis", ErrorMessage: err.Error()})
		return nil, err
	}
	summary := compliance.SummarizeGaps(items)
	audit.Log(audit.ComputationEvent{Kind: "gap-analysis", Success: true})
	return summary, nil
}

// ReviewQueue lists low-confidence gaps still in identified status.
func (e *Engine) ReviewQueue(threshold int) ([]model.GapItem, error) {
	items, err := e.stores.Gaps.ListGaps()
	if err != nil {
		return nil, err
	}
	return compliance.LowConfidenceGaps(items, threshold), nil
}
