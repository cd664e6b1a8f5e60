package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// ApplicationRepository handles persistence for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	Update(ctx context.Context, application *domain.Application) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*domain.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
}

// ApplicationFilter defines query params for application listing.
type ApplicationFilter struct {
	Region      *string
	JobID       *string
	CandidateID *string
	Status      *domain.ApplicationStatus
	Limit       int
	Offset      int
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates the repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, candidate_id, status, notes, location, applied_at, updated_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.JobID,
		&application.CandidateID,
		&application.Status,
		&application.Notes,
		&application.Location,
		&application.AppliedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, candidate_id, status, notes, location)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, applied_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		application.JobID,
		application.CandidateID,
		application.Status,
		application.Notes,
		application.Location,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
}

func (r *applicationRepository) Update(ctx context.Context, application *domain.Application) error {
	const query = `
        UPDATE applications
        SET status=$1, notes=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, application.Status, application.Notes, application.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 AND candidate_id=$2`
	return scanApplication(r.pool.QueryRow(ctx, query, jobID, candidateID))
}

func (r *applicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications`
	args := []any{}
	clauses := []string{}

	if filter.Region != nil {
		args = append(args, *filter.Region)
		clauses = append(clauses, fmt.Sprintf("LOWER(location)=$%d", len(args)))
	}
	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		clauses = append(clauses, fmt.Sprintf("job_id=$%d", len(args)))
	}
	if filter.CandidateID != nil {
		args = append(args, *filter.CandidateID)
		clauses = append(clauses, fmt.Sprintf("candidate_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY applied_at DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *application)
	}
	return result, rows.Err()
}
