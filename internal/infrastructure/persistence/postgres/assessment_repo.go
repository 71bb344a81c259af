package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
	pghelper "github.com/enterpriseland/assessment-service/pkg/postgres"
)

// AssessmentRepo implements port.AssessmentRepository.
type AssessmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepo creates a new repository backed by PostgreSQL.
func NewAssessmentRepo(pool *pgxpool.Pool) *AssessmentRepo {
	return &AssessmentRepo{pool: pool}
}

// Save persists an assessment and its metric collection in one transaction.
// The assessment row upserts with an optimistic version check; metrics are
// rewritten so the stored collection always matches the aggregate.
func (r *AssessmentRepo) Save(ctx context.Context, a model.Assessment) error {
	return pghelper.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO assessments (
				id, tenant_id, assessment_type, partner_id, scheme_id, status,
				total_weighted_score, max_possible_score, score_percentage,
				decision_band, recommendations,
				assessor_id, assessor_name, approver_id, approver_name,
				submitted_at, approved_at,
				version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
			ON CONFLICT (id) DO UPDATE SET
				status               = EXCLUDED.status,
				total_weighted_score = EXCLUDED.total_weighted_score,
				max_possible_score   = EXCLUDED.max_possible_score,
				score_percentage     = EXCLUDED.score_percentage,
				decision_band        = EXCLUDED.decision_band,
				recommendations      = EXCLUDED.recommendations,
				assessor_id          = EXCLUDED.assessor_id,
				assessor_name        = EXCLUDED.assessor_name,
				approver_id          = EXCLUDED.approver_id,
				approver_name        = EXCLUDED.approver_name,
				submitted_at         = EXCLUDED.submitted_at,
				approved_at          = EXCLUDED.approved_at,
				version              = assessments.version + 1,
				updated_at           = EXCLUDED.updated_at
			WHERE assessments.version = $18
		`
		tag, err := tx.Exec(ctx, query,
			a.ID(), a.TenantID(), a.AssessmentType().String(), a.PartnerID(), a.SchemeID(),
			a.Status().String(),
			a.TotalWeightedScore(), a.MaxPossibleScore(), a.ScorePercentage(),
			a.DecisionBand().String(), textArray(a.Recommendations()),
			a.Assessor().ID, a.Assessor().Name, a.Approver().ID, a.Approver().Name,
			a.SubmittedAt(), a.ApprovedAt(),
			a.Version(), a.CreatedAt(), a.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save assessment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("save assessment %s: %w", a.ID(), port.ErrVersionConflict)
		}

		// Rewrite the owned metric collection.
		if _, err := tx.Exec(ctx, `DELETE FROM assessment_metrics WHERE assessment_id = $1`, a.ID()); err != nil {
			return fmt.Errorf("clear metrics: %w", err)
		}
		for _, m := range a.Metrics() {
			_, err := tx.Exec(ctx, `
				INSERT INTO assessment_metrics (
					id, assessment_id, tenant_id, metric_name, category,
					score, weight, justification,
					created_by_id, created_by_name, created_at
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			`,
				m.ID(), a.ID(), a.TenantID(), m.Name(), m.Category().String(),
				m.Score(), m.Weight(), m.Justification(),
				m.CreatedBy().ID, m.CreatedBy().Name, m.CreatedAt(),
			)
			if err != nil {
				return fmt.Errorf("save metric %q: %w", m.Name(), err)
			}
		}
		return nil
	})
}

// FindByID retrieves a single assessment with its metrics.
func (r *AssessmentRepo) FindByID(ctx context.Context, tenantID, id string) (model.Assessment, error) {
	query := assessmentSelect + ` WHERE tenant_id = $1 AND id = $2`
	row := r.pool.QueryRow(ctx, query, tenantID, id)
	a, err := scanAssessment(row)
	if err != nil {
		return model.Assessment{}, err
	}
	metrics, err := r.loadMetrics(ctx, []string{a.ID()})
	if err != nil {
		return model.Assessment{}, err
	}
	return withMetrics(a, metrics[a.ID()]), nil
}

// FindByTenant retrieves every assessment owned by one tenant.
func (r *AssessmentRepo) FindByTenant(ctx context.Context, tenantID string) ([]model.Assessment, error) {
	query := assessmentSelect + ` WHERE tenant_id = $1 ORDER BY created_at DESC`
	return r.scanMany(ctx, query, tenantID)
}

// ListAll streams every stored assessment for the batch recompute job.
func (r *AssessmentRepo) ListAll(ctx context.Context) ([]model.Assessment, error) {
	query := assessmentSelect + ` ORDER BY created_at`
	return r.scanMany(ctx, query)
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const assessmentSelect = `
	SELECT id, tenant_id, assessment_type, partner_id, scheme_id, status,
	       total_weighted_score, max_possible_score, score_percentage,
	       decision_band, recommendations,
	       assessor_id, assessor_name, approver_id, approver_name,
	       submitted_at, approved_at,
	       version, created_at, updated_at
	FROM assessments`

type scannable interface {
	Scan(dest ...any) error
}

// textArray keeps nil slices out of TEXT[] NOT NULL columns: pgx encodes a
// nil []string as SQL NULL, an empty one as '{}'.
func textArray(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func (r *AssessmentRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.Assessment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var result []model.Assessment
	var ids []string
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
		ids = append(ids, a.ID())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	metrics, err := r.loadMetrics(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i, a := range result {
		result[i] = withMetrics(a, metrics[a.ID()])
	}
	return result, nil
}

func scanAssessment(s scannable) (model.Assessment, error) {
	var (
		id, tenantID, typeStr      string
		partnerID, schemeID        string
		statusStr                  string
		totalWeighted, maxPossible int
		scorePercentage            decimal.Decimal
		bandStr                    string
		recommendations            []string
		assessorID, assessorName   string
		approverID, approverName   string
		submittedAt, approvedAt    *time.Time
		version                    int
		createdAt, updatedAt       time.Time
	)

	err := s.Scan(
		&id, &tenantID, &typeStr, &partnerID, &schemeID, &statusStr,
		&totalWeighted, &maxPossible, &scorePercentage,
		&bandStr, &recommendations,
		&assessorID, &assessorName, &approverID, &approverName,
		&submittedAt, &approvedAt,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Assessment{}, fmt.Errorf("assessment: %w", port.ErrNotFound)
	}
	if err != nil {
		return model.Assessment{}, fmt.Errorf("scan assessment: %w", err)
	}

	assessmentType, err := valueobject.NewAssessmentType(typeStr)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("parse type: %w", err)
	}
	status, err := valueobject.NewAssessmentStatus(statusStr)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("parse status: %w", err)
	}
	band, err := valueobject.NewDecisionBand(bandStr)
	if err != nil {
		return model.Assessment{}, fmt.Errorf("parse decision band: %w", err)
	}

	return model.ReconstructAssessment(
		id, tenantID, assessmentType, partnerID, schemeID, status,
		nil,
		totalWeighted, maxPossible, scorePercentage, band, recommendations,
		model.Actor{ID: assessorID, Name: assessorName},
		model.Actor{ID: approverID, Name: approverName},
		submittedAt, approvedAt,
		version, createdAt, updatedAt,
	), nil
}

// loadMetrics fetches the metric collections for the given assessment IDs,
// keyed by assessment.
func (r *AssessmentRepo) loadMetrics(ctx context.Context, assessmentIDs []string) (map[string][]model.Metric, error) {
	result := make(map[string][]model.Metric, len(assessmentIDs))
	if len(assessmentIDs) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, assessment_id, metric_name, category, score, weight,
		       justification, created_by_id, created_by_name, created_at
		FROM assessment_metrics
		WHERE assessment_id = ANY($1)
		ORDER BY created_at
	`, assessmentIDs)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, assessmentID, name, categoryStr string
			score, weight                       int
			justification                       string
			createdByID, createdByName          string
			createdAt                           time.Time
		)
		if err := rows.Scan(
			&id, &assessmentID, &name, &categoryStr, &score, &weight,
			&justification, &createdByID, &createdByName, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		category, err := valueobject.NewMetricCategory(categoryStr)
		if err != nil {
			return nil, fmt.Errorf("parse category: %w", err)
		}
		result[assessmentID] = append(result[assessmentID], model.ReconstructMetric(
			id, name, category, score, weight, justification,
			model.Actor{ID: createdByID, Name: createdByName}, createdAt,
		))
	}
	return result, rows.Err()
}

// withMetrics rebuilds the aggregate with its metric collection attached.
func withMetrics(a model.Assessment, metrics []model.Metric) model.Assessment {
	return model.ReconstructAssessment(
		a.ID(), a.TenantID(), a.AssessmentType(), a.PartnerID(), a.SchemeID(), a.Status(),
		metrics,
		a.TotalWeightedScore(), a.MaxPossibleScore(), a.ScorePercentage(),
		a.DecisionBand(), a.Recommendations(),
		a.Assessor(), a.Approver(),
		a.SubmittedAt(), a.ApprovedAt(),
		a.Version(), a.CreatedAt(), a.UpdatedAt(),
	)
}
