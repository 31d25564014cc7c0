package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/application"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/response"
	"github.com/webcraft-academy/elearn-api/pkg/validation"
)

type JobHandler struct {
	Svc    *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type createJobRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	JobOrInternship string `json:"jobOrInternship" binding:"required,oneof=job internship"`
}

// Create POST /route/jobs-internships/create
func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	j, err := h.Svc.Create(c.Request.Context(), uid, application.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.JobOrInternship,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("job create failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"job": j}, "posting created", nil)
}

// List GET /route/jobs-internships/getAllJobs
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("job list failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs}, "postings", nil)
}

// Delete DELETE /route/jobs-internships/:id
func (h *JobHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	role := c.GetString(middleware.CtxUserRoleKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid, role); err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("job delete failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "posting deleted", nil)
}
