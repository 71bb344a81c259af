package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/service"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

var testActor = model.Actor{ID: "user-1", Name: "Alex Morgan"}

func mustMetric(t *testing.T, name string, category valueobject.MetricCategory, score, weight int) model.Metric {
	t.Helper()
	m, err := model.NewMetric(name, category, score, weight, "", testActor, time.Now().UTC())
	require.NoError(t, err)
	return m
}

func TestScoringEngine_CalculateScores(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())

	t.Run("aggregates weighted scores and category breakdowns", func(t *testing.T) {
		metrics := []model.Metric{
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 4, 5),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 3, 4),
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 5, 4),
		}

		result := engine.CalculateScores(metrics)

		assert.Equal(t, 52, result.TotalWeightedScore)
		assert.Equal(t, 65, result.MaxPossibleScore)
		assert.True(t, result.ScorePercentage.Equal(decimal.NewFromInt(80)),
			"expected 80, got %s", result.ScorePercentage)
		assert.Equal(t, 3, result.MetricCount)

		fin := result.CategoryScores[valueobject.MetricCategoryFinancial]
		assert.Equal(t, 20, fin.WeightedScore)
		assert.Equal(t, 25, fin.MaxPossible)
		assert.True(t, fin.Percentage.Equal(decimal.NewFromInt(80)))

		ops := result.CategoryScores[valueobject.MetricCategoryOperational]
		assert.True(t, ops.Percentage.Equal(decimal.NewFromInt(60)))

		track := result.CategoryScores[valueobject.MetricCategoryTrackRecord]
		assert.True(t, track.Percentage.Equal(decimal.NewFromInt(100)))
	})

	t.Run("empty collection yields zero totals", func(t *testing.T) {
		result := engine.CalculateScores(nil)

		assert.Zero(t, result.TotalWeightedScore)
		assert.Zero(t, result.MaxPossibleScore)
		assert.True(t, result.ScorePercentage.IsZero())
		assert.Zero(t, result.MetricCount)
		assert.Empty(t, result.CategoryScores)
	})

	t.Run("result is independent of metric order", func(t *testing.T) {
		metrics := []model.Metric{
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 4, 5),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 3, 4),
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 5, 4),
		}
		reversed := []model.Metric{metrics[2], metrics[1], metrics[0]}

		a := engine.CalculateScores(metrics)
		b := engine.CalculateScores(reversed)

		assert.Equal(t, a.TotalWeightedScore, b.TotalWeightedScore)
		assert.Equal(t, a.MaxPossibleScore, b.MaxPossibleScore)
		assert.True(t, a.ScorePercentage.Equal(b.ScorePercentage))
	})
}

func TestScoringEngine_DetermineDecisionBand(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())

	band := func(metrics ...model.Metric) valueobject.DecisionBand {
		return engine.DetermineDecisionBand(engine.CalculateScores(metrics))
	}

	t.Run("no metrics is UNSET", func(t *testing.T) {
		assert.True(t, band().Equal(valueobject.DecisionBandUnset))
	})

	t.Run("perfect scores are premium priority", func(t *testing.T) {
		got := band(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 5, 5),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 5, 5),
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 5, 5),
		)
		assert.True(t, got.Equal(valueobject.DecisionBandPremiumPriority))
	})

	t.Run("exactly 85 percent stays acceptable", func(t *testing.T) {
		// 17/20 = 85%: the premium bound is exclusive.
		got := band(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 5, 1),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 4, 3),
		)
		assert.True(t, got.Equal(valueobject.DecisionBandAcceptable), "got %s", got)
	})

	t.Run("just above 85 percent is premium priority", func(t *testing.T) {
		// 43/50 = 86%.
		got := band(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 5, 5),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 4, 3),
			mustMetric(t, "market demand", valueobject.MetricCategoryMarket, 3, 2),
		)
		assert.True(t, got.Equal(valueobject.DecisionBandPremiumPriority), "got %s", got)
	})

	t.Run("exactly 60 percent is acceptable", func(t *testing.T) {
		// 15/25 = 60%: the acceptable bound is inclusive.
		got := band(mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 3, 5))
		assert.True(t, got.Equal(valueobject.DecisionBandAcceptable), "got %s", got)
	})

	t.Run("below 60 percent is reject", func(t *testing.T) {
		got := band(mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 2, 5))
		assert.True(t, got.Equal(valueobject.DecisionBandReject), "got %s", got)
	})
}

func TestScoringEngine_CategoryRankings(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())

	metrics := []model.Metric{
		mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 4, 2),           // 80%
		mustMetric(t, "mitigation plans", valueobject.MetricCategoryRisk, 4, 5),         // 80%
		mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 2, 4), // 40%
	}
	result := engine.CalculateScores(metrics)

	t.Run("strongest ranks descending with deterministic ties", func(t *testing.T) {
		strongest := engine.StrongestCategories(result, 3)
		require.Len(t, strongest, 3)

		// FINANCIAL and RISK tie on 80%; FINANCIAL wins on canonical order.
		assert.True(t, strongest[0].Category.Equal(valueobject.MetricCategoryFinancial))
		assert.True(t, strongest[1].Category.Equal(valueobject.MetricCategoryRisk))
		assert.True(t, strongest[2].Category.Equal(valueobject.MetricCategoryOperational))
	})

	t.Run("weakest ranks ascending", func(t *testing.T) {
		weakest := engine.WeakestCategories(result, 2)
		require.Len(t, weakest, 2)

		assert.True(t, weakest[0].Category.Equal(valueobject.MetricCategoryOperational))
		assert.True(t, weakest[1].Category.Equal(valueobject.MetricCategoryFinancial))
	})

	t.Run("limit truncates the ranking", func(t *testing.T) {
		assert.Len(t, engine.StrongestCategories(result, 1), 1)
		assert.Len(t, engine.StrongestCategories(result, 10), 3)
	})
}

func TestScoringEngine_GenerateRecommendations(t *testing.T) {
	engine := service.NewScoringEngine(service.DefaultThresholds())

	generate := func(metrics ...model.Metric) []string {
		result := engine.CalculateScores(metrics)
		band := engine.DetermineDecisionBand(result)
		return engine.GenerateRecommendations(result, band, metrics)
	}

	t.Run("empty assessment gets a single guidance statement", func(t *testing.T) {
		recs := generate()
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "No metrics have been scored yet")
	})

	t.Run("premium band praises overall performance", func(t *testing.T) {
		recs := generate(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 5, 5),
			mustMetric(t, "delivery capacity", valueobject.MetricCategoryOperational, 5, 5),
		)
		assert.Contains(t, recs[0], "Excellent overall performance")
		assert.Contains(t, recs[len(recs)-1], "premium/priority status")
	})

	t.Run("reject band flags comprehensive improvement", func(t *testing.T) {
		recs := generate(mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 2, 3))
		assert.Contains(t, recs[0], "below acceptable thresholds")
		assert.Contains(t, recs[len(recs)-1], "suggests rejection")
	})

	t.Run("weak financial category gets bespoke remediation", func(t *testing.T) {
		recs := generate(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 2, 3),   // 40%
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 5, 5),
		)
		assert.Contains(t, recs, "Financial health concerns identified. Review balance sheet strength, profitability, and debt management strategies.")
	})

	t.Run("poorly scored critical metric is called out by name", func(t *testing.T) {
		recs := generate(
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 2, 5),
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 5, 5),
		)

		found := false
		for _, r := range recs {
			if strings.Contains(r, `Critical metric "liquidity"`) && strings.Contains(r, "Financial Health") {
				found = true
			}
		}
		assert.True(t, found, "expected a critical-metric call-out, got %v", recs)
	})

	t.Run("same inputs always yield the same list", func(t *testing.T) {
		metrics := []model.Metric{
			mustMetric(t, "liquidity", valueobject.MetricCategoryFinancial, 2, 3),
			mustMetric(t, "mitigation plans", valueobject.MetricCategoryRisk, 2, 4),
			mustMetric(t, "completed schemes", valueobject.MetricCategoryTrackRecord, 4, 5),
		}
		assert.Equal(t, generate(metrics...), generate(metrics...))
	})
}
