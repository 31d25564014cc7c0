package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	svc := NewJobService(jobs, nil)
	jobs.On("Create", ctx, mock.AnythingOfType("*entity.Job")).Return(nil)

	j, err := svc.Create(ctx, "u1", JobInput{
		Title:       "Backend Intern",
		Description: "Work on the course API.",
		Type:        entity.JobTypeInternship,
	})

	assert.NoError(t, err)
	assert.Equal(t, "u1", j.PostedBy)
	assert.Equal(t, entity.JobTypeInternship, j.Type)
}

func TestJobService_Delete(t *testing.T) {
	ctx := context.Background()
	posting := &entity.Job{ID: "j1", PostedBy: "owner"}

	t.Run("ByOwner", func(t *testing.T) {
		jobs := new(MockJobRepo)
		svc := NewJobService(jobs, nil)
		jobs.On("GetByID", ctx, "j1").Return(posting, nil)
		jobs.On("Delete", ctx, "j1").Return(nil)

		err := svc.Delete(ctx, "j1", "owner", entity.RoleUser)

		assert.NoError(t, err)
		jobs.AssertExpectations(t)
	})

	t.Run("ByAdmin", func(t *testing.T) {
		jobs := new(MockJobRepo)
		svc := NewJobService(jobs, nil)
		jobs.On("GetByID", ctx, "j1").Return(posting, nil)
		jobs.On("Delete", ctx, "j1").Return(nil)

		err := svc.Delete(ctx, "j1", "someone-else", entity.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("ByStranger", func(t *testing.T) {
		jobs := new(MockJobRepo)
		svc := NewJobService(jobs, nil)
		jobs.On("GetByID", ctx, "j1").Return(posting, nil)

		err := svc.Delete(ctx, "j1", "someone-else", entity.RoleUser)

		assert.ErrorIs(t, err, ErrNotAllowed)
		jobs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		jobs := new(MockJobRepo)
		svc := NewJobService(jobs, nil)
		jobs.On("GetByID", ctx, "ghost").Return(nil, repo.ErrNotFound)

		err := svc.Delete(ctx, "ghost", "owner", entity.RoleUser)

		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}
