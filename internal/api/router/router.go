package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Syed25794/shift-swap-ai/config"
	"github.com/Syed25794/shift-swap-ai/internal/api/handler"
	"github.com/Syed25794/shift-swap-ai/internal/api/middleware"
	"github.com/Syed25794/shift-swap-ai/internal/model"
	"github.com/Syed25794/shift-swap-ai/pkg/jwt"
	"github.com/Syed25794/shift-swap-ai/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth endpoints (no token required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// profile
			users := authorized.Group("/users")
			{
				users.GET("/profile", h.User.GetProfile)
				users.PUT("/profile", h.User.UpdateProfile)
			}

			// shifts
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.List)
				shifts.POST("", h.Shift.Create)
				shifts.GET("/:id", h.Shift.GetByID)
			}

			// swap requests
			swaps := authorized.Group("/swap-requests")
			{
				swaps.GET("", h.Swap.List)
				swaps.POST("", h.Swap.Create)
				swaps.GET("/:id", h.Swap.GetByID)
				swaps.PUT("/:id", h.Swap.UpdateStatus)
				swaps.DELETE("/:id", h.Swap.Delete)
				swaps.POST("/:id/volunteer", h.Swap.Volunteer)
			}

			// open requests from other workers
			authorized.GET("/open-swaps", h.Swap.ListOpen)

			// manager decision endpoints
			approvals := authorized.Group("/approvals")
			approvals.Use(middleware.RoleAuth(model.RoleManager))
			{
				approvals.GET("", h.Approval.List)
				approvals.GET("/history", h.Approval.History)
				approvals.POST("/:id/approve", h.Approval.Approve)
				approvals.POST("/:id/reject", h.Approval.Reject)
			}
		}
	}

	return r
}
