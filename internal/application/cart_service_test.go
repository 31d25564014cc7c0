package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
)

func cartFixtures() (*MockUserRepo, *MockCourseRepo, *MockCartRepo, *CartService) {
	users := new(MockUserRepo)
	courses := new(MockCourseRepo)
	carts := new(MockCartRepo)
	svc := NewCartService(users, courses, carts, nil)
	return users, courses, carts, svc
}

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "a@b.com"}
	course := &entity.Course{ID: "c1", Title: "React from Scratch", Charges: 49.99}

	t.Run("Success", func(t *testing.T) {
		users, courses, carts, svc := cartFixtures()
		users.On("GetByID", ctx, "u1").Return(user, nil)
		courses.On("GetByID", ctx, "c1").Return(course, nil)
		carts.On("AddItem", ctx, "u1", "c1").Return(&entity.CartItem{UserID: "u1", CourseID: "c1"}, nil)
		carts.On("Items", ctx, "u1").Return([]*entity.CartItem{{UserID: "u1", CourseID: "c1", Course: course}}, nil)

		items, err := svc.Add(ctx, "u1", "c1")

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "c1", items[0].CourseID)
		carts.AssertExpectations(t)
	})

	t.Run("AlreadyInCart", func(t *testing.T) {
		users, courses, carts, svc := cartFixtures()
		users.On("GetByID", ctx, "u1").Return(user, nil)
		courses.On("GetByID", ctx, "c1").Return(course, nil)
		carts.On("AddItem", ctx, "u1", "c1").Return(nil, repo.ErrDuplicate)

		_, err := svc.Add(ctx, "u1", "c1")

		assert.ErrorIs(t, err, ErrCourseInCart)
		carts.AssertNotCalled(t, "Items", mock.Anything, mock.Anything)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		users, _, _, svc := cartFixtures()
		users.On("GetByID", ctx, "nope").Return(nil, repo.ErrNotFound)

		_, err := svc.Add(ctx, "nope", "c1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		users, courses, _, svc := cartFixtures()
		users.On("GetByID", ctx, "u1").Return(user, nil)
		courses.On("GetByID", ctx, "ghost").Return(nil, repo.ErrNotFound)

		_, err := svc.Add(ctx, "u1", "ghost")

		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

// Concurrent adds of the same course must produce exactly one row and
// exactly one winner; everyone else sees the duplicate error.
func TestCartService_Add_Concurrent(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u1"}
	course := &entity.Course{ID: "c1", Charges: 50}

	users := new(MockUserRepo)
	courses := new(MockCourseRepo)
	users.On("GetByID", ctx, "u1").Return(user, nil)
	courses.On("GetByID", ctx, "c1").Return(course, nil)

	carts := newMemCartRepo()
	svc := NewCartService(users, courses, carts, nil)

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Add(ctx, "u1", "c1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	won, dup := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			won++
		case err == ErrCourseInCart:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, dup)

	items, err := carts.Items(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u1"}

	t.Run("Success", func(t *testing.T) {
		users, _, carts, svc := cartFixtures()
		users.On("GetByID", ctx, "u1").Return(user, nil)
		carts.On("RemoveItem", ctx, "u1", "c1").Return(nil)
		carts.On("Items", ctx, "u1").Return([]*entity.CartItem{}, nil)

		items, err := svc.Remove(ctx, "u1", "c1")

		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("NotInCart", func(t *testing.T) {
		users, _, carts, svc := cartFixtures()
		users.On("GetByID", ctx, "u1").Return(user, nil)
		carts.On("RemoveItem", ctx, "u1", "ghost").Return(repo.ErrNotFound)

		_, err := svc.Remove(ctx, "u1", "ghost")

		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestCartService_Clear_Idempotent(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepo)
	courses := new(MockCourseRepo)
	users.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	courses.On("GetByID", ctx, "c1").Return(&entity.Course{ID: "c1"}, nil)

	carts := newMemCartRepo()
	svc := NewCartService(users, courses, carts, nil)

	_, err := svc.Add(ctx, "u1", "c1")
	assert.NoError(t, err)

	assert.NoError(t, svc.Clear(ctx, "u1"))
	assert.NoError(t, svc.Clear(ctx, "u1"))

	items, err := svc.Items(ctx, "u1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_Aggregate(t *testing.T) {
	ctx := context.Background()

	// Two items at $50 and $30 across all carts: 2 sold, $80 earned.
	_, _, carts, svc := cartFixtures()
	carts.On("Aggregate", ctx).Return(&entity.CartAggregate{TotalCoursesSold: 2, TotalEarnings: 80}, nil)

	agg, err := svc.Aggregate(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, agg.TotalCoursesSold)
	assert.Equal(t, 80.0, agg.TotalEarnings)
}
