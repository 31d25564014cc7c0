package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webcraft-academy/elearn-api/internal/container"
	handlers "github.com/webcraft-academy/elearn-api/internal/interface/http"
	"github.com/webcraft-academy/elearn-api/internal/interface/middleware"
	"github.com/webcraft-academy/elearn-api/pkg/helpers"
)

// CartModule wires the cart routes. Everything here requires a session;
// the earnings aggregate additionally requires the admin role.
type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/addCart", m.Handler.Add)
		auth.GET("/getUserCart", m.Handler.Items)
		auth.DELETE("/deleteCart/:id", m.Handler.Remove)
		auth.DELETE("/clearCart", m.Handler.Clear)
		auth.GET("/getCartData", middleware.RequireAdmin(), m.Handler.Aggregate)
	}
}
