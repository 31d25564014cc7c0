package repository

import (
	"context"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
)

// CourseRepository defines the interface for course catalog operations.
type CourseRepository interface {
	Create(ctx context.Context, c *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	// List returns all courses, optionally filtered to one category.
	List(ctx context.Context, category string) ([]*entity.Course, error)
	Update(ctx context.Context, c *entity.Course) error
	// Delete removes the course row only; cart references are left in place.
	Delete(ctx context.Context, id string) error
}
