package server

import (
	"net/http"

	"staff-admin/internal/config"
	"staff-admin/internal/handlers"
	"staff-admin/internal/middleware"
	"staff-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("staff_session", store))

	r.Use(middleware.InjectUser())

	// ГЛАВНАЯ
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// СОТРУДНИКИ
	auth.GET("/workers", handlers.ListWorkers)
	auth.GET("/workers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowNewWorker,
	)
	auth.POST("/workers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateWorker,
	)
	auth.GET("/workers/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowEditWorker,
	)
	auth.POST("/workers/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.UpdateWorker,
	)
	auth.POST("/workers/:id/delete",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteWorker,
	)

	// история изменений карточки
	auth.GET("/workers/:id/history",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ShowWorkerHistory,
	)

	// ОБЪЕКТЫ И ЦЕНТРЫ
	auth.GET("/sites", handlers.ListSites)
	auth.GET("/sites/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowNewSite,
	)
	auth.POST("/sites/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateSite,
	)
	auth.GET("/sites/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ShowEditSite,
	)
	auth.POST("/sites/:id/edit",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateSite,
	)

	auth.GET("/centers", handlers.ListCenters)
	auth.POST("/centers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateCenter,
	)

	// СПРАВОЧНИКИ
	auth.GET("/directories",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowDirectories,
	)
	auth.POST("/directories/job-roles",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateJobRole,
	)
	auth.POST("/directories/departments",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateDepartment,
	)
	auth.POST("/directories/territories",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateTerritory,
	)

	// ПОСТАВЩИКИ И РАСХОДЫ
	auth.GET("/providers", handlers.ListProviders)
	auth.GET("/providers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowNewProvider,
	)
	auth.POST("/providers/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateProvider,
	)

	auth.GET("/expenses", handlers.ListExpenses)
	auth.GET("/expenses/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.ShowNewExpense,
	)
	auth.POST("/expenses/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
		handlers.CreateExpense,
	)

	// АУДИТ
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ListAuditEntries,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
