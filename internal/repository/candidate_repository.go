package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// CandidateRepository handles persistence for candidates.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	Update(ctx context.Context, candidate *domain.Candidate) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*domain.Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error)
	TouchLastLogin(ctx context.Context, id string) error
}

// CandidateFilter defines query params for candidate listing. Region
// narrows results to one office and is set from the caller's scope.
type CandidateFilter struct {
	Region *string
	Search *string
	Active *bool
	Skill  *string
	Limit  int
	Offset int
}

type candidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository instantiates the repository.
func NewCandidateRepository(pool *pgxpool.Pool) CandidateRepository {
	return &candidateRepository{pool: pool}
}

const candidateColumns = `id, first_name, last_name, email, password_hash, phone, location, skills, resume_url, cover_letter, active_flag, last_login_at, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var candidate domain.Candidate
	if err := row.Scan(
		&candidate.ID,
		&candidate.FirstName,
		&candidate.LastName,
		&candidate.Email,
		&candidate.PasswordHash,
		&candidate.Phone,
		&candidate.Location,
		&candidate.Skills,
		&candidate.ResumeURL,
		&candidate.CoverLetter,
		&candidate.Active,
		&candidate.LastLoginAt,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	const query = `
        INSERT INTO candidates (first_name, last_name, email, password_hash, phone, location, skills, resume_url, cover_letter, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.PasswordHash,
		candidate.Phone,
		candidate.Location,
		candidate.Skills,
		candidate.ResumeURL,
		candidate.CoverLetter,
		candidate.Active,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	const query = `
        UPDATE candidates
        SET first_name=$1, last_name=$2, email=$3, password_hash=$4, phone=$5, location=$6, skills=$7, resume_url=$8, cover_letter=$9, active_flag=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.PasswordHash,
		candidate.Phone,
		candidate.Location,
		candidate.Skills,
		candidate.ResumeURL,
		candidate.CoverLetter,
		candidate.Active,
		candidate.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM candidates WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id=$1`
	return scanCandidate(r.pool.QueryRow(ctx, query, id))
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email=$1`
	return scanCandidate(r.pool.QueryRow(ctx, query, email))
}

func (r *candidateRepository) List(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	args := []any{}
	clauses := []string{}

	if filter.Region != nil {
		args = append(args, *filter.Region)
		clauses = append(clauses, fmt.Sprintf("LOWER(location)=$%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active_flag=$%d", len(args)))
	}
	if filter.Skill != nil {
		args = append(args, *filter.Skill)
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(skills)", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *candidate)
	}
	return result, rows.Err()
}

func (r *candidateRepository) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE candidates SET last_login_at=NOW() WHERE id=$1`, id)
	return err
}
