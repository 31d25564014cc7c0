package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

// CartService owns the per-user cart and the admin earnings aggregate.
type CartService struct {
	Users   repo.UserRepository
	Courses repo.CourseRepository
	Carts   repo.CartRepository
	Logger  *logrus.Logger
}

func NewCartService(users repo.UserRepository, courses repo.CourseRepository, carts repo.CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{Users: users, Courses: courses, Carts: carts, Logger: logger}
}

func (s *CartService) requireUser(ctx context.Context, userID string) error {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// Add puts the course into the user's cart and returns the updated cart.
// Duplicate prevention happens inside the insert, so concurrent adds of
// the same course cannot both succeed.
func (s *CartService) Add(ctx context.Context, userID, courseID string) ([]*entity.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.Courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if _, err := s.Carts.AddItem(ctx, userID, courseID); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrCourseInCart
		}
		return nil, err
	}
	return s.Carts.Items(ctx, userID)
}

// Remove takes the course out of the cart; removing an absent course is
// reported and leaves the cart unchanged.
func (s *CartService) Remove(ctx context.Context, userID, courseID string) ([]*entity.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.Carts.RemoveItem(ctx, userID, courseID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return s.Carts.Items(ctx, userID)
}

// Clear empties the cart. Clearing twice is fine; both calls end with an
// empty cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.Carts.Clear(ctx, userID)
}

// Items returns the cart with course data expanded.
func (s *CartService) Items(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Carts.Items(ctx, userID)
}

// Aggregate reports total items across all carts and the summed prices
// of the referenced courses. A course that no longer exists contributes
// zero. This scans every cart on each call.
func (s *CartService) Aggregate(ctx context.Context) (*entity.CartAggregate, error) {
	return s.Carts.Aggregate(ctx)
}
