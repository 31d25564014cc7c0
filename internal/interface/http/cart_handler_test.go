package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/webcraft-academy/elearn-api/internal/application"
	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	repo "github.com/webcraft-academy/elearn-api/internal/domain/repository"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// In-memory stand-ins for the Postgres repositories, good enough for
// routing and status-code assertions.

type stubUsers struct{ byID map[string]*entity.User }

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}
func (s *stubUsers) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}
func (s *stubUsers) List(context.Context) ([]*entity.User, error)  { return nil, nil }
func (s *stubUsers) Update(context.Context, *entity.User) error    { return nil }
func (s *stubUsers) UpdateRole(_ context.Context, _, _ string) (*entity.User, error) {
	return nil, repo.ErrNotFound
}
func (s *stubUsers) UpdatePassword(context.Context, string, string) error { return nil }

type stubCourses struct{ byID map[string]*entity.Course }

func (s *stubCourses) Create(context.Context, *entity.Course) error { return nil }
func (s *stubCourses) GetByID(_ context.Context, id string) (*entity.Course, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, repo.ErrNotFound
}
func (s *stubCourses) List(context.Context, string) ([]*entity.Course, error) { return nil, nil }
func (s *stubCourses) Update(context.Context, *entity.Course) error           { return nil }
func (s *stubCourses) Delete(context.Context, string) error                   { return nil }

type stubCarts struct {
	items map[string]map[string]*entity.CartItem
}

func newStubCarts() *stubCarts {
	return &stubCarts{items: map[string]map[string]*entity.CartItem{}}
}

func (s *stubCarts) AddItem(_ context.Context, userID, courseID string) (*entity.CartItem, error) {
	if s.items[userID] == nil {
		s.items[userID] = map[string]*entity.CartItem{}
	}
	if _, ok := s.items[userID][courseID]; ok {
		return nil, repo.ErrDuplicate
	}
	item := &entity.CartItem{UserID: userID, CourseID: courseID}
	s.items[userID][courseID] = item
	return item, nil
}

func (s *stubCarts) RemoveItem(_ context.Context, userID, courseID string) error {
	if _, ok := s.items[userID][courseID]; !ok {
		return repo.ErrNotFound
	}
	delete(s.items[userID], courseID)
	return nil
}

func (s *stubCarts) Clear(_ context.Context, userID string) error {
	delete(s.items, userID)
	return nil
}

func (s *stubCarts) Items(_ context.Context, userID string) ([]*entity.CartItem, error) {
	out := make([]*entity.CartItem, 0, len(s.items[userID]))
	for _, it := range s.items[userID] {
		out = append(out, it)
	}
	return out, nil
}

func (s *stubCarts) Aggregate(context.Context) (*entity.CartAggregate, error) {
	agg := &entity.CartAggregate{}
	for _, cart := range s.items {
		agg.TotalCoursesSold += len(cart)
	}
	return agg, nil
}

func cartTestRouter(svc *application.CartService, jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(svc, nil)
	r := gin.New()
	auth := r.Group("/route", middleware.Auth(jwt))
	auth.POST("/addCart", h.Add)
	auth.GET("/getUserCart", h.Items)
	auth.GET("/getCartData", middleware.RequireAdmin(), h.Aggregate)
	return r
}

func TestCartHandler_StatusMapping(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	userToken, _, _ := jwt.GenerateToken("u1", "user")
	adminToken, _, _ := jwt.GenerateToken("a1", "admin")

	const courseID = "11111111-1111-1111-1111-111111111111"
	users := &stubUsers{byID: map[string]*entity.User{
		"u1": {ID: "u1", Role: "user"},
		"a1": {ID: "a1", Role: "admin"},
	}}
	courses := &stubCourses{byID: map[string]*entity.Course{
		courseID: {ID: courseID, Charges: 50},
	}}
	svc := application.NewCartService(users, courses, newStubCarts(), nil)
	r := cartTestRouter(svc, jwt)

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("AddRequiresToken", func(t *testing.T) {
		w := do(http.MethodPost, "/route/addCart", "", `{"courseId":"`+courseID+`"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AddThenDuplicate", func(t *testing.T) {
		body := `{"courseId":"` + courseID + `"}`
		w := do(http.MethodPost, "/route/addCart", userToken, body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)

		w = do(http.MethodPost, "/route/addCart", userToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AddUnknownCourse", func(t *testing.T) {
		w := do(http.MethodPost, "/route/addCart", userToken, `{"courseId":"22222222-2222-2222-2222-222222222222"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetCart", func(t *testing.T) {
		w := do(http.MethodGet, "/route/getUserCart", userToken, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), courseID)
	})

	t.Run("AggregateUserForbidden", func(t *testing.T) {
		w := do(http.MethodGet, "/route/getCartData", userToken, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AggregateAdmin", func(t *testing.T) {
		w := do(http.MethodGet, "/route/getCartData", adminToken, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "totalCoursesSold")
	})
}
