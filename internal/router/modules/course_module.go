package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraft-academy/elearn-api/internal/container"
	handlers "github.com/webcraft-academy/elearn-api/internal/interface/http"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// CourseModule wires the catalog routes under /route/courses.
// Reads are public; writes require an admin session.
type CourseModule struct {
	Handler *handlers.CourseHandler
	JWT     *helpers.JWTManager
}

func NewCourseModule(h *handlers.CourseHandler, jwt *helpers.JWTManager) *CourseModule {
	return &CourseModule{Handler: h, JWT: jwt}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	courses := rg.Group("/courses")
	{
		courses.GET("/getCourses", publicLimiter, m.Handler.List)
		courses.GET("/getCourse/:id", publicLimiter, m.Handler.Get)
		courses.GET("/search", searchLimiter, m.Handler.Search)

		admin := courses.Group("/")
		admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
		{
			admin.POST("/createCourse", m.Handler.Create)
			admin.PUT("/updateCourse/:id", m.Handler.Update)
			admin.DELETE("/deleteCourse/:id", m.Handler.Delete)
		}
	}
}
