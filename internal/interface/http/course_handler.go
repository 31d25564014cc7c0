package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/webcraft-academy/elearn-api/internal/application"
	"github.com/webcraft-academy/elearn-api/pkg/response"
	"github.com/webcraft-academy/elearn-api/pkg/validation"
)

type CourseHandler struct {
	Svc    *application.CourseService
	Logger *logrus.Logger
}

func NewCourseHandler(svc *application.CourseService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

type courseRequest struct {
	Title       string  `form:"title" json:"title" binding:"required"`
	Description string  `form:"description" json:"description" binding:"required"`
	Category    string  `form:"category" json:"category" binding:"required"`
	Duration    string  `form:"duration" json:"duration" binding:"required"`
	Charges     float64 `form:"charges" json:"charges" binding:"gte=0"`
	Status      string  `form:"status" json:"status" binding:"omitempty,oneof=active closed"`
}

func (r courseRequest) input() application.CourseInput {
	return application.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Duration:    r.Duration,
		Charges:     r.Charges,
		Status:      r.Status,
	}
}

// Create POST /route/courses/createCourse (admin only, multipart; image optional)
func (h *CourseHandler) Create(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var (
		course any
		err    error
	)
	if fileHeader, ferr := c.FormFile("image"); ferr == nil {
		file, oerr := fileHeader.Open()
		if oerr != nil {
			response.Error[any](c, http.StatusBadRequest, "could not read image", nil)
			return
		}
		defer func() { _ = file.Close() }()
		course, err = h.Svc.Create(c.Request.Context(), req.input(), file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	} else {
		course, err = h.Svc.Create(c.Request.Context(), req.input(), nil, "", "")
	}
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("course create failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course}, "course created", nil)
}

// List GET /route/courses/getCourses?category=...
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("course list failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses}, "courses", nil)
}

// Get GET /route/courses/getCourse/:id
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		st := statusFor(err)
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course}, "course", nil)
}

// Search GET /route/courses/search?q=...&size=...
func (h *CourseHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("course search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": hits}, "search results", nil)
}

// Update PUT /route/courses/updateCourse/:id (admin only)
func (h *CourseHandler) Update(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("course update failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course}, "course updated", nil)
}

// Delete DELETE /route/courses/deleteCourse/:id (admin only)
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("course delete failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "course deleted", nil)
}
