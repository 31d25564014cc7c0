package application

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
	"github.com/webcraft-academy/elearn-api/pkg/mailer"
)

// MockUserRepo is a mock implementation of repository.UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id, role string) (*entity.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, email, hash string) error {
	args := m.Called(ctx, email, hash)
	return args.Error(0)
}

// MockCourseRepo is a mock implementation of repository.CourseRepository
type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, c *entity.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *MockCourseRepo) List(ctx context.Context, category string) ([]*entity.Course, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *MockCourseRepo) Update(ctx context.Context, c *entity.Course) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCartRepo is a mock implementation of repository.CartRepository
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) AddItem(ctx context.Context, userID, courseID string) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CartItem), args.Error(1)
}

func (m *MockCartRepo) RemoveItem(ctx context.Context, userID, courseID string) error {
	args := m.Called(ctx, userID, courseID)
	return args.Error(0)
}

func (m *MockCartRepo) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepo) Items(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CartItem), args.Error(1)
}

func (m *MockCartRepo) Aggregate(ctx context.Context) (*entity.CartAggregate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CartAggregate), args.Error(1)
}

// MockJobRepo is a mock implementation of repository.JobRepository
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, j *entity.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context) ([]*entity.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Job), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingNotifier captures enqueued email jobs for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
}

func (n *recordingNotifier) Send(_ context.Context, job mailer.EmailJob) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobs = append(n.jobs, job)
	return nil
}

func (n *recordingNotifier) sent() []mailer.EmailJob {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]mailer.EmailJob, len(n.jobs))
	copy(out, n.jobs)
	return out
}

// memCartRepo is an in-memory CartRepository with the same atomicity
// contract as the Postgres one. Used to exercise concurrent adds.
type memCartRepo struct {
	mu    sync.Mutex
	items map[string]map[string]*entity.CartItem // userID -> courseID -> item
	next  int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: map[string]map[string]*entity.CartItem{}}
}

func (r *memCartRepo) AddItem(_ context.Context, userID, courseID string) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items[userID] == nil {
		r.items[userID] = map[string]*entity.CartItem{}
	}
	if _, ok := r.items[userID][courseID]; ok {
		return nil, repo.ErrDuplicate
	}
	r.next++
	item := &entity.CartItem{UserID: userID, CourseID: courseID}
	r.items[userID][courseID] = item
	return item, nil
}

func (r *memCartRepo) RemoveItem(_ context.Context, userID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[userID][courseID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.items[userID], courseID)
	return nil
}

func (r *memCartRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
	return nil
}

func (r *memCartRepo) Items(_ context.Context, userID string) ([]*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.CartItem, 0, len(r.items[userID]))
	for _, it := range r.items[userID] {
		out = append(out, it)
	}
	return out, nil
}

func (r *memCartRepo) Aggregate(_ context.Context) (*entity.CartAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agg := &entity.CartAggregate{}
	for _, cart := range r.items {
		agg.TotalCoursesSold += len(cart)
	}
	return agg, nil
}
