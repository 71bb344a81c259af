package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoringEngine – pure scoring, classification and ranking
// ---------------------------------------------------------------------------

// Thresholds holds the decision-band boundaries as score percentages.
// Classification is percentage-based rather than raw-score-based so the rule
// stays scale-invariant no matter how many metrics an assessment carries.
type Thresholds struct {
	// Premium is the exclusive lower bound for PREMIUM_PRIORITY.
	Premium decimal.Decimal
	// Acceptable is the inclusive lower bound for ACCEPTABLE.
	Acceptable decimal.Decimal
}

// DefaultThresholds returns the gold-standard boundaries: above 85 is
// premium/priority, 60 to 85 inclusive is acceptable, below 60 is reject.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Premium:    decimal.NewFromInt(85),
		Acceptable: decimal.NewFromInt(60),
	}
}

// CategoryScore is the aggregate restricted to one metric category.
type CategoryScore struct {
	WeightedScore int
	MaxPossible   int
	Percentage    decimal.Decimal
	MetricCount   int
}

// AggregateResult is the full output of CalculateScores.
type AggregateResult struct {
	TotalWeightedScore int
	MaxPossibleScore   int
	ScorePercentage    decimal.Decimal
	MetricCount        int
	CategoryScores     map[valueobject.MetricCategory]CategoryScore
}

// RankedCategory is one entry of a strongest/weakest ranking.
type RankedCategory struct {
	Category      valueobject.MetricCategory
	Percentage    decimal.Decimal
	WeightedScore int
	MaxPossible   int
}

// ScoringEngine aggregates weighted metrics, classifies the result into a
// decision band and ranks category performance. It is stateless apart from
// its configured thresholds and safe for concurrent use.
type ScoringEngine struct {
	thresholds Thresholds
}

// NewScoringEngine creates an engine with the given band thresholds.
func NewScoringEngine(thresholds Thresholds) *ScoringEngine {
	return &ScoringEngine{thresholds: thresholds}
}

// CalculateScores sums weighted scores and per-category breakdowns. Sums are
// exact integer arithmetic; only the final percentage divides, so the result
// is independent of metric order. An empty collection yields zero totals and
// an exact 0 percentage.
func (e *ScoringEngine) CalculateScores(metrics []model.Metric) AggregateResult {
	result := AggregateResult{
		MetricCount:    len(metrics),
		CategoryScores: make(map[valueobject.MetricCategory]CategoryScore),
	}

	for _, m := range metrics {
		result.TotalWeightedScore += m.WeightedScore()
		result.MaxPossibleScore += m.MaxWeightedScore()

		cs := result.CategoryScores[m.Category()]
		cs.WeightedScore += m.WeightedScore()
		cs.MaxPossible += m.MaxWeightedScore()
		cs.MetricCount++
		result.CategoryScores[m.Category()] = cs
	}

	result.ScorePercentage = percentage(result.TotalWeightedScore, result.MaxPossibleScore)
	for cat, cs := range result.CategoryScores {
		cs.Percentage = percentage(cs.WeightedScore, cs.MaxPossible)
		result.CategoryScores[cat] = cs
	}
	return result
}

// DetermineDecisionBand maps an aggregate percentage to a decision band.
// Assessments with no scored metrics are UNSET rather than REJECT.
func (e *ScoringEngine) DetermineDecisionBand(result AggregateResult) valueobject.DecisionBand {
	if result.MaxPossibleScore == 0 {
		return valueobject.DecisionBandUnset
	}
	switch {
	case result.ScorePercentage.GreaterThan(e.thresholds.Premium):
		return valueobject.DecisionBandPremiumPriority
	case result.ScorePercentage.GreaterThanOrEqual(e.thresholds.Acceptable):
		return valueobject.DecisionBandAcceptable
	default:
		return valueobject.DecisionBandReject
	}
}

// Snapshot composes aggregation, classification and recommendation
// generation into the cached-field set the Assessment aggregate stores. It
// satisfies model.Scorer.
func (e *ScoringEngine) Snapshot(metrics []model.Metric) model.ScoreSnapshot {
	result := e.CalculateScores(metrics)
	band := e.DetermineDecisionBand(result)
	return model.ScoreSnapshot{
		TotalWeightedScore: result.TotalWeightedScore,
		MaxPossibleScore:   result.MaxPossibleScore,
		ScorePercentage:    result.ScorePercentage,
		DecisionBand:       band,
		Recommendations:    e.GenerateRecommendations(result, band, metrics),
	}
}

// StrongestCategories returns up to n categories ranked by percentage
// descending. Ties break on canonical category order.
func (e *ScoringEngine) StrongestCategories(result AggregateResult, n int) []RankedCategory {
	ranked := rankCategories(result)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Percentage.Equal(ranked[j].Percentage) {
			return ranked[i].Percentage.GreaterThan(ranked[j].Percentage)
		}
		return ranked[i].Category.Rank() < ranked[j].Category.Rank()
	})
	return truncate(ranked, n)
}

// WeakestCategories returns up to n categories ranked by percentage
// ascending. Ties break on canonical category order.
func (e *ScoringEngine) WeakestCategories(result AggregateResult, n int) []RankedCategory {
	ranked := rankCategories(result)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Percentage.Equal(ranked[j].Percentage) {
			return ranked[i].Percentage.LessThan(ranked[j].Percentage)
		}
		return ranked[i].Category.Rank() < ranked[j].Category.Rank()
	})
	return truncate(ranked, n)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func percentage(weighted, possible int) decimal.Decimal {
	if possible == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(weighted)).
		Div(decimal.NewFromInt(int64(possible))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

func rankCategories(result AggregateResult) []RankedCategory {
	ranked := make([]RankedCategory, 0, len(result.CategoryScores))
	// Walk the canonical order so the pre-sort sequence is deterministic.
	for _, cat := range valueobject.AllMetricCategories {
		cs, ok := result.CategoryScores[cat]
		if !ok {
			continue
		}
		ranked = append(ranked, RankedCategory{
			Category:      cat,
			Percentage:    cs.Percentage,
			WeightedScore: cs.WeightedScore,
			MaxPossible:   cs.MaxPossible,
		})
	}
	return ranked
}

func truncate(ranked []RankedCategory, n int) []RankedCategory {
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}
