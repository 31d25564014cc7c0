package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

// JobService owns the job/internship board.
type JobService struct {
	Repo   repo.JobRepository
	Logger *logrus.Logger
}

func NewJobService(r repo.JobRepository, logger *logrus.Logger) *JobService {
	return &JobService{Repo: r, Logger: logger}
}

type JobInput struct {
	Title       string
	Description string
	Type        string
}

func (s *JobService) Create(ctx context.Context, userID string, in JobInput) (*entity.Job, error) {
	j := &entity.Job{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		PostedBy:    userID,
	}
	if err := s.Repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JobService) List(ctx context.Context) ([]*entity.Job, error) {
	return s.Repo.List(ctx)
}

// Delete removes a posting. Only the poster or an admin may delete it.
func (s *JobService) Delete(ctx context.Context, jobID, requesterID, requesterRole string) error {
	j, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if j.PostedBy != requesterID && requesterRole != entity.RoleAdmin {
		return ErrNotAllowed
	}
	if err := s.Repo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	return nil
}
