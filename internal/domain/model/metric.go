package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Metric – one weighted scoring criterion
// ---------------------------------------------------------------------------

var (
	ErrScoreOutOfRange  = errors.New("metric score must be between 1 and 5")
	ErrWeightOutOfRange = errors.New("metric weight must be between 1 and 5")
)

const (
	minMetricValue = 1
	maxMetricValue = 5
)

// Metric is an immutable weighted criterion. Once scored it never changes;
// corrections replace the metric rather than mutate it.
type Metric struct {
	id            string
	name          string
	category      valueobject.MetricCategory
	score         int
	weight        int
	justification string
	createdBy     Actor
	createdAt     time.Time
}

// NewMetric validates and creates a Metric. Score is the 1 (poor) to
// 5 (excellent) performance rating; weight is the 1 (minor) to 5 (critical)
// importance.
func NewMetric(
	name string,
	category valueobject.MetricCategory,
	score, weight int,
	justification string,
	createdBy Actor,
	now time.Time,
) (Metric, error) {
	if name == "" {
		return Metric{}, errors.New("metric name is required")
	}
	if category.IsZero() {
		return Metric{}, errors.New("metric category is required")
	}
	if score < minMetricValue || score > maxMetricValue {
		return Metric{}, ErrScoreOutOfRange
	}
	if weight < minMetricValue || weight > maxMetricValue {
		return Metric{}, ErrWeightOutOfRange
	}
	return Metric{
		id:            uuid.New().String(),
		name:          name,
		category:      category,
		score:         score,
		weight:        weight,
		justification: justification,
		createdBy:     createdBy,
		createdAt:     now,
	}, nil
}

// ReconstructMetric rebuilds a Metric from persistence without validation
// side-effects.
func ReconstructMetric(
	id, name string,
	category valueobject.MetricCategory,
	score, weight int,
	justification string,
	createdBy Actor,
	createdAt time.Time,
) Metric {
	return Metric{
		id:            id,
		name:          name,
		category:      category,
		score:         score,
		weight:        weight,
		justification: justification,
		createdBy:     createdBy,
		createdAt:     createdAt,
	}
}

// WeightedScore is score × weight, between 1 and 25 for valid metrics.
func (m Metric) WeightedScore() int { return m.score * m.weight }

// MaxWeightedScore is the ceiling this metric could contribute, 5 × weight.
func (m Metric) MaxWeightedScore() int { return maxMetricValue * m.weight }

// ScorePercentage is the metric's own attainment, rounded to 2 decimal places.
func (m Metric) ScorePercentage() decimal.Decimal {
	return decimal.NewFromInt(int64(m.WeightedScore())).
		Div(decimal.NewFromInt(int64(m.MaxWeightedScore()))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (m Metric) ID() string                            { return m.id }
func (m Metric) Name() string                          { return m.name }
func (m Metric) Category() valueobject.MetricCategory  { return m.category }
func (m Metric) Score() int                            { return m.score }
func (m Metric) Weight() int                           { return m.weight }
func (m Metric) Justification() string                 { return m.justification }
func (m Metric) CreatedBy() Actor                      { return m.createdBy }
func (m Metric) CreatedAt() time.Time                  { return m.createdAt }
