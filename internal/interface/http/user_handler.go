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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Password    string `form:"password" binding:"required,pwd"`
	DateOfBirth string `form:"dateOfBirth" binding:"required"`
}

// Signup POST /route/signup (multipart: profile fields + image)
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "please upload an image", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "please upload an image", nil)
		return
	}
	defer func() { _ = file.Close() }()

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
	}, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u}, "successfully signed up", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /route/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":  u,
		"token": token,
		"role":  u.Role,
	}, "successfully logged in", map[string]any{"expires_at": exp})
}

type updateRoleRequest struct {
	UserID  string `json:"userId" binding:"required,uuid"`
	NewRole string `json:"newRole" binding:"required,oneof=user admin"`
}

// UpdateRole PUT /route/updateUserRole (admin only)
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateRole(c.Request.Context(), req.UserID, req.NewRole)
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("role update failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user role updated", nil)
}

// GetUser GET /route/user
func (h *UserHandler) GetUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		st := statusFor(err)
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "user", nil)
}

// GetAllUsers GET /route/allUsers
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list users failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	if len(users) == 0 {
		response.Error[any](c, http.StatusNotFound, "no users found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users}, "users", nil)
}

// Logout POST /route/logout
func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Logout(c.Request.Context(), uid); err != nil {
		st := statusFor(err)
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "successfully logged out", nil)
}

type updateProfileRequest struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	DateOfBirth string `form:"dateOfBirth"`
}

// UpdateProfile PUT /route/update-profile (multipart; image optional)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	var (
		u   any
		err error
	)
	if fileHeader, ferr := c.FormFile("image"); ferr == nil {
		file, oerr := fileHeader.Open()
		if oerr != nil {
			response.Error[any](c, http.StatusBadRequest, "could not read image", nil)
			return
		}
		defer func() { _ = file.Close() }()
		u, err = h.Svc.UpdateProfile(c.Request.Context(), uid, in, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	} else {
		u, err = h.Svc.UpdateProfile(c.Request.Context(), uid, in, nil, "", "")
	}
	if err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("profile update failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u}, "profile updated", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword POST /route/forgot-password
// Always responds 200 to avoid account enumeration.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("forgot password failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "if the email exists, a code was sent", nil)
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// VerifyCode POST /route/verify-code
func (h *UserHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.VerifyCode(c.Request.Context(), req.Email, req.Code); err != nil {
		st := statusFor(err)
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "code verified", nil)
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

// ResetPassword POST /route/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		st := statusFor(err)
		if st == http.StatusInternalServerError && h.Logger != nil {
			h.Logger.WithError(err).Error("password reset failed")
		}
		response.Error[any](c, st, message(err, st), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "password updated", nil)
}
