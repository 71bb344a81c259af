package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enterpriseland/assessment-service/internal/domain/model"
	"github.com/enterpriseland/assessment-service/internal/domain/port"
	"github.com/enterpriseland/assessment-service/internal/domain/valueobject"
	pghelper "github.com/enterpriseland/assessment-service/pkg/postgres"
)

// CaseRepo implements port.CaseRepository.
type CaseRepo struct {
	pool *pgxpool.Pool
}

// NewCaseRepo creates a new repository backed by PostgreSQL.
func NewCaseRepo(pool *pgxpool.Pool) *CaseRepo {
	return &CaseRepo{pool: pool}
}

// Save persists a case and its transition history in one transaction.
func (r *CaseRepo) Save(ctx context.Context, c model.DueDiligenceCase) error {
	return pghelper.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO due_diligence_cases (
				id, tenant_id, case_reference, case_name, priority, status,
				lead_assessor_id, lead_assessor_name,
				decision, decision_maker_id, decision_maker_name, decision_at,
				conditions, completed_at,
				version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
			ON CONFLICT (id) DO UPDATE SET
				status              = EXCLUDED.status,
				decision            = EXCLUDED.decision,
				decision_maker_id   = EXCLUDED.decision_maker_id,
				decision_maker_name = EXCLUDED.decision_maker_name,
				decision_at         = EXCLUDED.decision_at,
				conditions          = EXCLUDED.conditions,
				completed_at        = EXCLUDED.completed_at,
				version             = due_diligence_cases.version + 1,
				updated_at          = EXCLUDED.updated_at
			WHERE due_diligence_cases.version = $15
		`
		tag, err := tx.Exec(ctx, query,
			c.ID(), c.TenantID(), c.CaseReference(), c.CaseName(), c.Priority(), c.Status().String(),
			c.LeadAssessor().ID, c.LeadAssessor().Name,
			c.Decision().String(), c.DecisionMaker().ID, c.DecisionMaker().Name, c.DecisionAt(),
			textArray(c.Conditions()), c.CompletedAt(),
			c.Version(), c.CreatedAt(), c.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save case: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("save case %s: %w", c.ID(), port.ErrVersionConflict)
		}

		// Rewrite the history trail alongside the aggregate.
		if _, err := tx.Exec(ctx, `DELETE FROM case_status_history WHERE case_id = $1`, c.ID()); err != nil {
			return fmt.Errorf("clear case history: %w", err)
		}
		for i, h := range c.History() {
			_, err := tx.Exec(ctx, `
				INSERT INTO case_status_history (
					case_id, tenant_id, position, from_status, to_status,
					changed_by_id, changed_by_name, notes, occurred_at
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			`,
				c.ID(), c.TenantID(), i, h.FromStatus.String(), h.ToStatus.String(),
				h.ChangedBy.ID, h.ChangedBy.Name, h.Notes, h.OccurredAt,
			)
			if err != nil {
				return fmt.Errorf("save case history entry: %w", err)
			}
		}
		return nil
	})
}

// FindByID retrieves a single case with its history.
func (r *CaseRepo) FindByID(ctx context.Context, tenantID, id string) (model.DueDiligenceCase, error) {
	query := caseSelect + ` WHERE tenant_id = $1 AND id = $2`
	return r.findOne(ctx, query, tenantID, id)
}

// FindByReference retrieves a case by its DD<year><seq> reference.
func (r *CaseRepo) FindByReference(ctx context.Context, tenantID, reference string) (model.DueDiligenceCase, error) {
	query := caseSelect + ` WHERE tenant_id = $1 AND case_reference = $2`
	return r.findOne(ctx, query, tenantID, reference)
}

// NextSequence allocates the next per-year case number atomically.
func (r *CaseRepo) NextSequence(ctx context.Context, year int) (int, error) {
	var seq int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO case_sequences (year, last_value) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = case_sequences.last_value + 1
		RETURNING last_value
	`, year).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("allocate case sequence: %w", err)
	}
	return seq, nil
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

const caseSelect = `
	SELECT id, tenant_id, case_reference, case_name, priority, status,
	       lead_assessor_id, lead_assessor_name,
	       decision, decision_maker_id, decision_maker_name, decision_at,
	       conditions, completed_at,
	       version, created_at, updated_at
	FROM due_diligence_cases`

func (r *CaseRepo) findOne(ctx context.Context, query string, args ...any) (model.DueDiligenceCase, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	c, err := scanCase(row)
	if err != nil {
		return model.DueDiligenceCase{}, err
	}
	history, err := r.loadHistory(ctx, c.ID())
	if err != nil {
		return model.DueDiligenceCase{}, err
	}
	return model.ReconstructDueDiligenceCase(
		c.ID(), c.TenantID(), c.CaseReference(), c.CaseName(), c.Priority(), c.Status(),
		c.LeadAssessor(), c.Decision(), c.DecisionMaker(), c.DecisionAt(),
		c.Conditions(), history, c.CompletedAt(),
		c.Version(), c.CreatedAt(), c.UpdatedAt(),
	), nil
}

func scanCase(s scannable) (model.DueDiligenceCase, error) {
	var (
		id, tenantID, reference, name, priority, statusStr string
		leadID, leadName                                   string
		decisionStr                                        string
		deciderID, deciderName                             string
		decisionAt, completedAt                            *time.Time
		conditions                                         []string
		version                                            int
		createdAt, updatedAt                               time.Time
	)

	err := s.Scan(
		&id, &tenantID, &reference, &name, &priority, &statusStr,
		&leadID, &leadName,
		&decisionStr, &deciderID, &deciderName, &decisionAt,
		&conditions, &completedAt,
		&version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.DueDiligenceCase{}, fmt.Errorf("case: %w", port.ErrNotFound)
	}
	if err != nil {
		return model.DueDiligenceCase{}, fmt.Errorf("scan case: %w", err)
	}

	status, err := valueobject.NewCaseStatus(statusStr)
	if err != nil {
		return model.DueDiligenceCase{}, fmt.Errorf("parse status: %w", err)
	}
	var decision valueobject.CaseDecision
	if decisionStr != "" {
		decision, err = valueobject.NewCaseDecision(decisionStr)
		if err != nil {
			return model.DueDiligenceCase{}, fmt.Errorf("parse decision: %w", err)
		}
	}

	return model.ReconstructDueDiligenceCase(
		id, tenantID, reference, name, priority, status,
		model.Actor{ID: leadID, Name: leadName},
		decision,
		model.Actor{ID: deciderID, Name: deciderName},
		decisionAt, conditions, nil, completedAt,
		version, createdAt, updatedAt,
	), nil
}

func (r *CaseRepo) loadHistory(ctx context.Context, caseID string) ([]model.StatusChange, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT from_status, to_status, changed_by_id, changed_by_name, notes, occurred_at
		FROM case_status_history
		WHERE case_id = $1
		ORDER BY position
	`, caseID)
	if err != nil {
		return nil, fmt.Errorf("query case history: %w", err)
	}
	defer rows.Close()

	var history []model.StatusChange
	for rows.Next() {
		var (
			fromStr, toStr           string
			changedByID, changedName string
			notes                    string
			occurredAt               time.Time
		)
		if err := rows.Scan(&fromStr, &toStr, &changedByID, &changedName, &notes, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan case history: %w", err)
		}
		from, err := valueobject.NewCaseStatus(fromStr)
		if err != nil {
			return nil, fmt.Errorf("parse history status: %w", err)
		}
		to, err := valueobject.NewCaseStatus(toStr)
		if err != nil {
			return nil, fmt.Errorf("parse history status: %w", err)
		}
		history = append(history, model.StatusChange{
			FromStatus: from,
			ToStatus:   to,
			ChangedBy:  model.Actor{ID: changedByID, Name: changedName},
			Notes:      notes,
			OccurredAt: occurredAt,
		})
	}
	return history, rows.Err()
}
