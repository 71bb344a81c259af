package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// Low-scoring categories below this attainment get remediation guidance.
var weakCategoryThreshold = 50

// GenerateRecommendations produces ordered, deterministic guidance from an
// aggregate result, its decision band and the underlying metrics. No I/O and
// no randomness; the same inputs always yield the same list.
func (e *ScoringEngine) GenerateRecommendations(
	result AggregateResult,
	band valueobject.DecisionBand,
	metrics []model.Metric,
) []string {
	if result.MetricCount == 0 {
		return []string{
			"No metrics have been scored yet. Complete the scoring framework before drawing conclusions.",
		}
	}

	var recommendations []string

	// Overall performance statements.
	if result.ScorePercentage.GreaterThan(e.thresholds.Premium) {
		recommendations = append(recommendations,
			"Excellent overall performance. This partner/scheme demonstrates strong capabilities across assessed criteria.")
	} else if result.ScorePercentage.LessThan(e.thresholds.Acceptable) {
		recommendations = append(recommendations,
			"Overall performance is below acceptable thresholds. Consider comprehensive improvement across multiple areas.")
	}

	// Category-specific remediation for the weakest areas.
	for _, weak := range e.WeakestCategories(result, 2) {
		if weak.Percentage.GreaterThanOrEqual(decimalFromInt(weakCategoryThreshold)) {
			continue
		}
		recommendations = append(recommendations, categoryRemediation(weak.Category))
	}

	// Heavily weighted metrics with poor scores deserve a named call-out.
	for _, m := range metrics {
		if m.Score() <= 2 && m.Weight() >= 4 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Critical metric %q in %s scored poorly despite high importance. Prioritise remediation in this area.",
				m.Name(), m.Category().DisplayName()))
		}
	}

	// Decision-band statements.
	switch band {
	case valueobject.DecisionBandReject:
		recommendations = append(recommendations,
			"Current assessment suggests rejection. Significant improvements required before re-assessment.")
	case valueobject.DecisionBandAcceptable:
		recommendations = append(recommendations,
			"Assessment indicates acceptable performance. Monitor ongoing performance and consider targeted improvements.")
	case valueobject.DecisionBandPremiumPriority:
		recommendations = append(recommendations,
			"Excellent candidate for premium/priority status. Strong performance across assessment criteria.")
	}

	return recommendations
}

func categoryRemediation(cat valueobject.MetricCategory) string {
	switch cat {
	case valueobject.MetricCategoryFinancial:
		return "Financial health concerns identified. Review balance sheet strength, profitability, and debt management strategies."
	case valueobject.MetricCategoryOperational:
		return "Operational capability gaps detected. Assess team capacity, delivery track record, and process maturity."
	case valueobject.MetricCategoryRisk:
		return "Risk profile requires attention. Review mitigation strategies and contingency planning."
	default:
		return fmt.Sprintf("%s performance below expectations. Focused improvement required in this area.", cat.DisplayName())
	}
}

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }
