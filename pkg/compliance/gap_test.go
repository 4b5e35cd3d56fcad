package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complymap/complymap/pkg/model"
)

func intPtr(v int) *int { return &v }

func testGaps() []model.GapItem {
	return []model.GapItem{
		{ID: 1, MappingID: 1, Priority: model.PriorityMedium, PercentageImpact: 30, Confidence: 80, Status: model.GapStatusIdentified, EstimatedEffort: intPtr(8)},
		{ID: 2, MappingID: 1, Priority: model.PriorityCritical, PercentageImpact: 10, Confidence: 90, Status: model.GapStatusPlanned, EstimatedEffort: intPtr(16)},
		{ID: 3, MappingID: 1, Priority: model.PriorityCritical, PercentageImpact: 40, Confidence: 50, Status: model.GapStatusIdentified},
		{ID: 4, MappingID: 1, Priority: model.PriorityHigh, PercentageImpact: 25, Confidence: 70, Status: model.GapStatusResolved, EstimatedEffort: intPtr(4)},
		{ID: 5, MappingID: 1, Priority: model.PriorityHigh, PercentageImpact: 15, Confidence: 55, Status: model.GapStatusWontFix, EstimatedEffort: intPtr(2)},
		{ID: 6, MappingID: 1, Priority: model.PriorityLow, PercentageImpact: 5, Confidence: 40, Status: model.GapStatusInProgress, EstimatedEffort: intPtr(1)},
	}
}

func TestSortGaps(t *testing.T) {
	items := testGaps()
	SortGaps(items)

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	// Critical by impact desc, then high by impact desc, medium, low.
	assert.Equal(t, []int64{3, 2, 4, 5, 1, 6}, ids)
}

func TestOpenHighPriorityGaps(t *testing.T) {
	open := OpenHighPriorityGaps(testGaps())

	require.Len(t, open, 2)
	assert.Equal(t, int64(3), open[0].ID)
	assert.Equal(t, int64(2), open[1].ID)
}

func TestSummarizeGaps(t *testing.T) {
	summary := SummarizeGaps(testGaps())

	require.Len(t, summary, 3)

	assert.Equal(t, model.PriorityCritical, summary[0].Priority)
	assert.Equal(t, 2, summary[0].Count)
	assert.Equal(t, 16, summary[0].TotalEffort)
	assert.Equal(t, 50, summary[0].TotalImpact)
	assert.Equal(t, 1, summary[0].MissingEstimates)

	// Resolved and wont_fix high-priority items are out of scope.
	assert.Equal(t, model.PriorityMedium, summary[1].Priority)
	assert.Equal(t, 1, summary[1].Count)

	assert.Equal(t, model.PriorityLow, summary[2].Priority)
	assert.Equal(t, 1, summary[2].TotalEffort)
}

func TestLowConfidenceGaps(t *testing.T) {
	flagged := LowConfidenceGaps(testGaps(), DefaultConfidenceReviewThreshold)

	// Only identified items below the threshold are flagged; item 6 is
	// low confidence but already in progress.
	require.Len(t, flagged, 1)
	assert.Equal(t, int64(3), flagged[0].ID)
}

func TestGapOutstanding(t *testing.T) {
	assert.True(t, GapOutstanding(model.GapStatusIdentified))
	assert.True(t, GapOutstanding(model.GapStatusPlanned))
	assert.True(t, GapOutstanding(model.GapStatusInProgress))
	assert.False(t, GapOutstanding(model.GapStatusResolved))
	assert.False(t, GapOutstanding(model.GapStatusWontFix))
}
