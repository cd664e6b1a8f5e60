package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentdesk/recruitment-service/internal/domain"
)

// CalendarTaskRepository handles persistence for calendar tasks.
type CalendarTaskRepository interface {
	Create(ctx context.Context, task *domain.CalendarTask) error
	Update(ctx context.Context, task *domain.CalendarTask) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CalendarTask, error)
	List(ctx context.Context, filter CalendarTaskFilter) ([]domain.CalendarTask, error)
}

// CalendarTaskFilter defines query params for task listing.
type CalendarTaskFilter struct {
	Region     *string
	AssigneeID *string
	Status     *domain.TaskStatus
	DueBefore  *time.Time
	DueAfter   *time.Time
	Limit      int
	Offset     int
}

type calendarTaskRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarTaskRepository instantiates the repository.
func NewCalendarTaskRepository(pool *pgxpool.Pool) CalendarTaskRepository {
	return &calendarTaskRepository{pool: pool}
}

const taskColumns = `id, title, description, assignee_id, location, status, due_at, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.CalendarTask, error) {
	var task domain.CalendarTask
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.AssigneeID,
		&task.Location,
		&task.Status,
		&task.DueAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *calendarTaskRepository) Create(ctx context.Context, task *domain.CalendarTask) error {
	const query = `
        INSERT INTO calendar_tasks (title, description, assignee_id, location, status, due_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.AssigneeID,
		task.Location,
		task.Status,
		task.DueAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *calendarTaskRepository) Update(ctx context.Context, task *domain.CalendarTask) error {
	const query = `
        UPDATE calendar_tasks
        SET title=$1, description=$2, assignee_id=$3, location=$4, status=$5, due_at=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		task.Title,
		task.Description,
		task.AssigneeID,
		task.Location,
		task.Status,
		task.DueAt,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarTaskRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM calendar_tasks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarTaskRepository) GetByID(ctx context.Context, id string) (*domain.CalendarTask, error) {
	query := `SELECT ` + taskColumns + ` FROM calendar_tasks WHERE id=$1`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *calendarTaskRepository) List(ctx context.Context, filter CalendarTaskFilter) ([]domain.CalendarTask, error) {
	query := `SELECT ` + taskColumns + ` FROM calendar_tasks`
	args := []any{}
	clauses := []string{}

	if filter.Region != nil {
		args = append(args, *filter.Region)
		clauses = append(clauses, fmt.Sprintf("LOWER(location)=$%d", len(args)))
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		clauses = append(clauses, fmt.Sprintf("assignee_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.DueBefore != nil {
		args = append(args, *filter.DueBefore)
		clauses = append(clauses, fmt.Sprintf("due_at<=$%d", len(args)))
	}
	if filter.DueAfter != nil {
		args = append(args, *filter.DueAfter)
		clauses = append(clauses, fmt.Sprintf("due_at>=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY due_at ASC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", normalizeLimit(filter.Limit), normalizeOffset(filter.Offset))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CalendarTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *task)
	}
	return result, rows.Err()
}
