package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// MetricCategory – immutable value object
// ---------------------------------------------------------------------------

// MetricCategory classifies the area a scoring metric measures.
type MetricCategory struct {
	value string
}

const (
	metricCategoryFinancial   = "FINANCIAL"
	metricCategoryOperational = "OPERATIONAL"
	metricCategoryTrackRecord = "TRACK_RECORD"
	metricCategoryMarket      = "MARKET"
	metricCategoryRisk        = "RISK"
	metricCategoryESG         = "ESG"
	metricCategoryLocation    = "LOCATION"
	metricCategoryEconomic    = "ECONOMIC"
)

var (
	MetricCategoryFinancial   = MetricCategory{value: metricCategoryFinancial}
	MetricCategoryOperational = MetricCategory{value: metricCategoryOperational}
	MetricCategoryTrackRecord = MetricCategory{value: metricCategoryTrackRecord}
	MetricCategoryMarket      = MetricCategory{value: metricCategoryMarket}
	MetricCategoryRisk        = MetricCategory{value: metricCategoryRisk}
	MetricCategoryESG         = MetricCategory{value: metricCategoryESG}
	MetricCategoryLocation    = MetricCategory{value: metricCategoryLocation}
	MetricCategoryEconomic    = MetricCategory{value: metricCategoryEconomic}
)

// AllMetricCategories is the canonical ordering. Category ranking uses this
// order to break percentage ties so results are stable across runs.
var AllMetricCategories = []MetricCategory{
	MetricCategoryFinancial,
	MetricCategoryOperational,
	MetricCategoryTrackRecord,
	MetricCategoryMarket,
	MetricCategoryRisk,
	MetricCategoryESG,
	MetricCategoryLocation,
	MetricCategoryEconomic,
}

var validMetricCategories = map[string]MetricCategory{
	metricCategoryFinancial:   MetricCategoryFinancial,
	metricCategoryOperational: MetricCategoryOperational,
	metricCategoryTrackRecord: MetricCategoryTrackRecord,
	metricCategoryMarket:      MetricCategoryMarket,
	metricCategoryRisk:        MetricCategoryRisk,
	metricCategoryESG:         MetricCategoryESG,
	metricCategoryLocation:    MetricCategoryLocation,
	metricCategoryEconomic:    MetricCategoryEconomic,
}

var metricCategoryDisplayNames = map[string]string{
	metricCategoryFinancial:   "Financial Health",
	metricCategoryOperational: "Operational Capability",
	metricCategoryTrackRecord: "Track Record & Experience",
	metricCategoryMarket:      "Market Position",
	metricCategoryRisk:        "Risk Assessment",
	metricCategoryESG:         "Environmental, Social & Governance",
	metricCategoryLocation:    "Location & Site Factors",
	metricCategoryEconomic:    "Economic Viability",
}

// NewMetricCategory creates a MetricCategory from a raw string.
func NewMetricCategory(s string) (MetricCategory, error) {
	v, ok := validMetricCategories[s]
	if !ok {
		return MetricCategory{}, fmt.Errorf("invalid metric category: %q", s)
	}
	return v, nil
}

// String returns the string representation of the category.
func (c MetricCategory) String() string { return c.value }

// DisplayName returns the human-readable category label.
func (c MetricCategory) DisplayName() string { return metricCategoryDisplayNames[c.value] }

// IsZero returns true if the category has not been initialised.
func (c MetricCategory) IsZero() bool { return c.value == "" }

// Equal returns true when both categories carry the same value.
func (c MetricCategory) Equal(other MetricCategory) bool { return c.value == other.value }

// Rank returns the category's position in the canonical ordering.
func (c MetricCategory) Rank() int {
	for i, cat := range AllMetricCategories {
		if cat.value == c.value {
			return i
		}
	}
	return len(AllMetricCategories)
}
