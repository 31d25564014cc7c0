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

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addCartRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

// Add POST /route/addCart
func (h *CartHandler) Add(c *gin.Context) {
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.Add(c.Request.Context(), uid, req.CourseID)
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("cart add failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"cart": items}, "course added to cart", nil)
}

// Items GET /route/getUserCart
func (h *CartHandler) Items(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.Items(c.Request.Context(), uid)
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("cart fetch failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cart": items}, "cart", nil)
}

// Remove DELETE /route/deleteCart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.Remove(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("cart remove failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cart": items}, "course removed from cart", nil)
}

// Clear DELETE /route/clearCart
func (h *CartHandler) Clear(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("cart clear failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"cart": []any{}}, "cart cleared", nil)
}

// Aggregate GET /route/getCartData (admin only)
func (h *CartHandler) Aggregate(c *gin.Context) {
	agg, err := h.Svc.Aggregate(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("cart aggregate failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, agg, "cart data", nil)
}
