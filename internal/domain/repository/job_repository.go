package repository

import (
	"context"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
)

// JobRepository defines the interface for job board operations.
type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	List(ctx context.Context) ([]*entity.Job, error)
	Delete(ctx context.Context, id string) error
}
