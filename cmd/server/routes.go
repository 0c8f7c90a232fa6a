package main

import (
	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/pkg/logger"
	"github.com/revolutionrp/community/pkg/response"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	r.GET("/health", svc.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		// Public routes
		api.GET("/server-stats", svc.statsHandler.GetServerStats)
		api.GET("/changelogs", svc.changelogHandler.ListPublic)
		api.GET("/applications", svc.applicationHandler.ListActive)
		api.GET("/applications/:id", svc.applicationHandler.GetActive)
		api.POST("/applications/submit", svc.submitLimiter.Middleware(), svc.submissionHandler.Submit)

		api.POST("/admin/login", svc.loginLimiter.Middleware(), svc.authHandler.Login)

		// Routes for any authenticated account
		authed := api.Group("")
		authed.Use(middleware.AuthRequired())
		{
			authed.GET("/user/me", svc.authHandler.GetCurrentUser)
		}

		// Submission review and form reads: admins and scoped staff
		staff := api.Group("/admin")
		staff.Use(middleware.AuthRequired(), middleware.StaffOrAdminRequired(), middleware.AuditLog())
		{
			staff.GET("/application-forms", svc.applicationHandler.ListAll)
			staff.GET("/application-forms/:id", svc.applicationHandler.Get)

			staff.GET("/submissions", svc.submissionHandler.List)
			staff.GET("/submissions/:id", svc.submissionHandler.Get)
			staff.PUT("/submissions/:id/status", svc.submissionHandler.UpdateStatus)
		}

		// Management surfaces: admins only
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			admin.POST("/application-forms", svc.applicationHandler.Create)
			admin.PUT("/application-forms/:id", svc.applicationHandler.Update)
			admin.DELETE("/application-forms/:id", svc.applicationHandler.Delete)

			admin.GET("/users", svc.userHandler.List)
			admin.POST("/users", svc.userHandler.Create)
			admin.PUT("/users/:id", svc.userHandler.Update)
			admin.DELETE("/users/:id", svc.userHandler.Delete)

			admin.GET("/changelogs", svc.changelogHandler.ListAll)
			admin.POST("/changelogs", svc.changelogHandler.Create)
			admin.PUT("/changelogs/:id", svc.changelogHandler.Update)
			admin.DELETE("/changelogs/:id", svc.changelogHandler.Delete)

			admin.GET("/system-logs", svc.systemLogHandler.List)
			admin.POST("/system-logs/cleanup", svc.systemLogHandler.Cleanup)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
}
