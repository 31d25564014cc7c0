package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraft-academy/elearn-api/internal/container"
	handlers "github.com/webcraft-academy/elearn-api/internal/interface/http"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// JobModule wires the job/internship board under /route/jobs-internships.
// The whole board requires a session; deletes are limited to the poster
// or an admin inside the service.
type JobModule struct {
	Handler *handlers.JobHandler
	JWT     *helpers.JWTManager
}

func NewJobModule(h *handlers.JobHandler, jwt *helpers.JWTManager) *JobModule {
	return &JobModule{Handler: h, JWT: jwt}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs-internships")
	jobs.Use(middleware.Auth(m.JWT))
	jobs.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		jobs.GET("/getAllJobs", m.Handler.List)
		jobs.POST("/create", m.Handler.Create)
		jobs.DELETE("/:id", m.Handler.Delete)
	}
}
