package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

func TestNewMetric(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	actor := model.Actor{ID: "user-1", Name: "Alex Morgan"}

	t.Run("creates a valid metric", func(t *testing.T) {
		m, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 4, 5, "strong balance sheet", actor, now)
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID())
		assert.Equal(t, "liquidity", m.Name())
		assert.True(t, m.Category().Equal(valueobject.MetricCategoryFinancial))
		assert.Equal(t, 4, m.Score())
		assert.Equal(t, 5, m.Weight())
		assert.Equal(t, "strong balance sheet", m.Justification())
		assert.Equal(t, actor, m.CreatedBy())
	})

	t.Run("rejects out-of-range score", func(t *testing.T) {
		_, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 6, 3, "", actor, now)
		assert.ErrorIs(t, err, model.ErrScoreOutOfRange)

		_, err = model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 0, 3, "", actor, now)
		assert.ErrorIs(t, err, model.ErrScoreOutOfRange)
	})

	t.Run("rejects out-of-range weight", func(t *testing.T) {
		_, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 3, 0, "", actor, now)
		assert.ErrorIs(t, err, model.ErrWeightOutOfRange)

		_, err = model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 3, 6, "", actor, now)
		assert.ErrorIs(t, err, model.ErrWeightOutOfRange)
	})

	t.Run("requires a name and a category", func(t *testing.T) {
		_, err := model.NewMetric("", valueobject.MetricCategoryFinancial, 3, 3, "", actor, now)
		assert.Error(t, err)

		_, err = model.NewMetric("liquidity", valueobject.MetricCategory{}, 3, 3, "", actor, now)
		assert.Error(t, err)
	})
}

func TestMetric_WeightedScore(t *testing.T) {
	now := time.Now().UTC()
	actor := model.Actor{ID: "user-1", Name: "Alex Morgan"}

	t.Run("weighted score is score times weight", func(t *testing.T) {
		m, err := model.NewMetric("liquidity", valueobject.MetricCategoryFinancial, 4, 5, "", actor, now)
		require.NoError(t, err)

		assert.Equal(t, 20, m.WeightedScore())
		assert.Equal(t, 25, m.MaxWeightedScore())
		assert.True(t, m.ScorePercentage().Equal(decimal.NewFromInt(80)))
	})

	t.Run("valid metrics stay within 1 to 25", func(t *testing.T) {
		low, err := model.NewMetric("a", valueobject.MetricCategoryRisk, 1, 1, "", actor, now)
		require.NoError(t, err)
		high, err := model.NewMetric("b", valueobject.MetricCategoryRisk, 5, 5, "", actor, now)
		require.NoError(t, err)

		assert.Equal(t, 1, low.WeightedScore())
		assert.Equal(t, 25, high.WeightedScore())
	})
}
