package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraft-academy/elearn-api/internal/container"
	handlers "github.com/webcraft-academy/elearn-api/internal/interface/http"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// UserModule wires account routes.
// Public: POST /route/signup, /route/login, /route/forgot-password,
// /route/verify-code, /route/reset-password
// Protected: GET /route/user, GET /route/allUsers, POST /route/logout,
// PUT /route/update-profile, PUT /route/updateUserRole (admin)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	resetLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/forgot-password", resetLimiter, m.Handler.ForgotPassword)
	rg.POST("/verify-code", resetLimiter, m.Handler.VerifyCode)
	rg.POST("/reset-password", resetLimiter, m.Handler.ResetPassword)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/user", m.Handler.GetUser)
		auth.GET("/allUsers", m.Handler.GetAllUsers)
		auth.POST("/logout", m.Handler.Logout)
		auth.PUT("/update-profile", m.Handler.UpdateProfile)
		auth.PUT("/updateUserRole", middleware.RequireAdmin(), m.Handler.UpdateRole)
	}
}
