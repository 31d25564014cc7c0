package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	"github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row pgx.Row) (*entity.Job, error) {
	j := &entity.Job{}
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Type, &j.PostedBy, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, description, job_type, posted_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, j.Title, j.Description, j.Type, j.PostedBy)

	return row.Scan(&j.ID, &j.CreatedAt)
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	return scanJob(r.pool.QueryRow(ctx, `
		SELECT id, title, description, job_type, posted_by, created_at
		FROM jobs WHERE id = $1
	`, id))
}

func (r *JobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, job_type, posted_by, created_at
		FROM jobs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
