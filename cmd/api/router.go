package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"consulting-backend/internal/shared/middleware"
	"consulting-backend/internal/shared/response"
	"consulting-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)

		auth.POST("/logout",
			middleware.AuthMiddleware(c.JWTManager, c.Cache), c.UserHandler.Logout)
		auth.GET("/me",
			middleware.AuthMiddleware(c.JWTManager, c.Cache), c.UserHandler.Me)
		auth.PUT("/change-password",
			middleware.AuthMiddleware(c.JWTManager, c.Cache), c.UserHandler.ChangePassword)
	}
}

// setupPublicRoutes wires everything the marketing site reads without
// authentication.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.GetAll)
		blogs.GET("/:id", c.BlogHandler.GetByID)
		blogs.GET("/slug/:slug", c.BlogHandler.GetBySlug)
	}

	v1.GET("/team", c.TeamHandler.GetAll)
	v1.GET("/team/:id", c.TeamHandler.GetByID)

	testimonials := v1.Group("/testimonials")
	{
		testimonials.GET("", c.TestimonialHandler.GetAll)
		testimonials.GET("/featured", c.TestimonialHandler.GetFeatured)
		testimonials.GET("/:id", c.TestimonialHandler.GetByID)
	}

	v1.POST("/contact", c.ContactHandler.Create)
}

// setupAdminRoutes wires the CMS panel. Every route requires a valid,
// unrevoked session with the admin role.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager, c.Cache),
		middleware.AdminMiddleware(),
	)
	{
		admin.POST("/blogs", c.BlogHandler.Create)
		admin.PUT("/blogs/:id", c.BlogHandler.Update)
		admin.DELETE("/blogs/:id", c.BlogHandler.Delete)

		admin.POST("/team", c.TeamHandler.Create)
		admin.PUT("/team/:id", c.TeamHandler.Update)
		admin.DELETE("/team/:id", c.TeamHandler.Delete)

		admin.POST("/testimonials", c.TestimonialHandler.Create)
		admin.PUT("/testimonials/:id", c.TestimonialHandler.Update)
		admin.DELETE("/testimonials/:id", c.TestimonialHandler.Delete)

		admin.GET("/contact", c.ContactHandler.GetAll)
		admin.DELETE("/contact/:id", c.ContactHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable, "HEALTH_CHECK_FAILED", "database unreachable", status)
			return
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
