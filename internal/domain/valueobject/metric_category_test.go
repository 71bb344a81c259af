package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

func TestNewMetricCategory(t *testing.T) {
	cat, err := valueobject.NewMetricCategory("TRACK_RECORD")
	require.NoError(t, err)
	assert.Equal(t, "Track Record & Experience", cat.DisplayName())

	_, err = valueobject.NewMetricCategory("ASTROLOGY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid metric category")
}

func TestMetricCategory_Rank(t *testing.T) {
	// Rank follows the canonical declaration order used to break ties.
	assert.Equal(t, 0, valueobject.MetricCategoryFinancial.Rank())
	assert.Equal(t, 1, valueobject.MetricCategoryOperational.Rank())
	assert.Less(t,
		valueobject.MetricCategoryRisk.Rank(),
		valueobject.MetricCategoryESG.Rank(),
	)

	for i, cat := range valueobject.AllMetricCategories {
		assert.Equal(t, i, cat.Rank())
	}
}

func TestCaseStatus_Completion(t *testing.T) {
	assert.Equal(t, 10, valueobject.CaseStatusInitiated.CompletionPercentage())
	assert.Equal(t, 50, valueobject.CaseStatusAnalysis.CompletionPercentage())
	assert.Equal(t, 100, valueobject.CaseStatusCompleted.CompletionPercentage())
	assert.Equal(t, 0, valueobject.CaseStatusOnHold.CompletionPercentage())
}

func TestCaseDecision_ResultingStatus(t *testing.T) {
	assert.True(t, valueobject.CaseDecisionProceed.ResultingStatus().Equal(valueobject.CaseStatusApproved))
	assert.True(t, valueobject.CaseDecisionConditional.ResultingStatus().Equal(valueobject.CaseStatusApproved))
	assert.True(t, valueobject.CaseDecisionDecline.ResultingStatus().Equal(valueobject.CaseStatusRejected))
	assert.True(t, valueobject.CaseDecisionDefer.ResultingStatus().Equal(valueobject.CaseStatusOnHold))
}
