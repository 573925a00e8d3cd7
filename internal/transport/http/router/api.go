package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-rent-market/internal/core/auth"
	"go-rent-market/internal/transport/http/handler"
	mdw "go-rent-market/internal/transport/http/middleware"
)

// NewAPIEngine 用户端引擎：/api/v1 下的市场接口
func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	uh *handler.UserHandler,
	ih *handler.ItemHandler,
	oh *handler.OfferHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	authed := mdw.AuthJWT(jwter, "")

	// 身份
	api.POST("/auth/login", uh.Login)
	api.POST("/users", uh.Register)
	api.GET("/users", uh.List)
	api.GET("/users/:id", uh.Get)
	api.DELETE("/users/:id", authed, uh.Delete)

	// 商品
	api.GET("/items", ih.List)
	api.GET("/items/:id", ih.Get)
	api.POST("/items", authed, ih.Create)
	api.DELETE("/items/:id", authed, ih.Delete)

	// 报价
	api.GET("/offers", oh.List)
	api.GET("/offers/buyer/:buyerUserId", oh.ListByBuyer)
	api.GET("/offers/owner/:ownerUserId", oh.ListByOwner)
	api.GET("/offers/:id", oh.Get)
	api.POST("/offers", authed, oh.Create)
	api.PUT("/offers/:id", oh.UpdateStatus)
	api.DELETE("/offers/:id", oh.Delete)

	return r
}
