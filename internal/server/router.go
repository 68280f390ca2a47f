package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"contract-flow/internal/config"
	"contract-flow/internal/handlers"
	"contract-flow/internal/middleware"
	"contract-flow/internal/models"
	"contract-flow/internal/workflow"
)

func NewRouter(cfg *config.Config, engine *workflow.Engine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("cf_session", store))
	r.Use(middleware.InjectUser(engine))

	contracts := handlers.NewContractHandler(engine)

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/logout", handlers.Logout)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/auth/me", handlers.Me)

	// CONTRACTS
	auth.GET("/contracts", contracts.List)
	auth.POST("/contracts", contracts.Create)
	auth.GET("/contracts/export", contracts.ExportContracts)
	auth.GET("/contracts/:id", contracts.Get)
	auth.PUT("/contracts/:id", contracts.Update)
	auth.DELETE("/contracts/:id", contracts.Delete)

	// WORKFLOW
	auth.GET("/contracts/:id/workflow", contracts.GetWorkflow)
	auth.POST("/contracts/:id/workflow", contracts.ExecuteAction)

	// ACTIVITIES
	auth.GET("/contracts/:id/activities", handlers.ListContractActivities)
	auth.GET("/activities",
		middleware.RequireRole(models.RoleAdmin),
		handlers.RecentActivities,
	)

	// DASHBOARD
	auth.GET("/dashboard/stats", handlers.DashboardStats)

	// DEPARTMENTS (reference data readable by everyone, managed by admin)
	auth.GET("/departments", handlers.ListDepartments)
	auth.POST("/departments",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateDepartment,
	)
	auth.PUT("/departments/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateDepartment,
	)
	auth.DELETE("/departments/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteDepartment,
	)
	auth.POST("/departments/:id/units",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateUnit,
	)
	auth.DELETE("/departments/:id/units/:unit_id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteUnit,
	)

	// USER ADMIN
	auth.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)
	auth.PUT("/users/:id/role",
		middleware.RequireRole(models.RoleAdmin),
		handlers.SetUserRole,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
