package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-rent-market/internal/core/auth"
	"go-rent-market/internal/domain"
	"go-rent-market/internal/transport/http/handler"
	mdw "go-rent-market/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎，/admin/v1 全部要求 admin 角色
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, ah *handler.AdminHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))

	admin.GET("/users", ah.ListUsers)
	admin.DELETE("/users/:id", ah.DeleteUser)
	admin.GET("/offers", ah.ListOffers)

	return r
}
