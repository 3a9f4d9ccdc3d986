package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apierrors "github.com/orgconsole/b2b-admin-api/internal/errors"
	"github.com/orgconsole/b2b-admin-api/internal/handlers"
	"github.com/orgconsole/b2b-admin-api/internal/middleware"
	"github.com/orgconsole/b2b-admin-api/internal/repository"
	"github.com/orgconsole/b2b-admin-api/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Options configures NewRouter.
type Options struct {
	DB                 *gorm.DB
	Logger             *logrus.Logger
	CORSAllowedOrigins []string
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(opts Options) *gin.Engine {
	orgRepo := repository.NewOrganizationRepository(opts.DB)
	orgService := services.NewOrganizationService(orgRepo)
	userService := services.NewUserService(repository.NewUserRepository(opts.DB), orgRepo)

	orgHandler := handlers.NewOrganizationHandler(orgService, opts.Logger)
	userHandler := handlers.NewUserHandler(userService, opts.Logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSAllowedOrigins)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Organization admin API is running",
		})
	})

	requireOrgID := middleware.RequireIDParam("id", middleware.ContextKeyOrganizationID)
	requireUserID := middleware.RequireIDParam("userId", middleware.ContextKeyUserID)

	api := r.Group("/api")
	{
		orgs := api.Group("/organizations")
		{
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("/:id", requireOrgID, orgHandler.GetOrganization)
			orgs.PUT("/:id", requireOrgID, orgHandler.UpdateOrganization)
			orgs.PATCH("/:id/status", requireOrgID, orgHandler.UpdateOrganizationStatus)
			orgs.DELETE("/:id", requireOrgID, orgHandler.DeleteOrganization)

			orgUsers := orgs.Group("/:id/users", requireOrgID)
			{
				orgUsers.GET("", userHandler.ListUsers)
				orgUsers.POST("", userHandler.CreateUser)
				orgUsers.PUT("/:userId", requireUserID, userHandler.UpdateUser)
				orgUsers.DELETE("/:userId", requireUserID, userHandler.DeleteUser)
			}
		}

		// Flat user routes kept for existing console builds; not organization-scoped.
		users := api.Group("/users")
		{
			users.PUT("/:userId", requireUserID, userHandler.UpdateUser)
			users.DELETE("/:userId", requireUserID, userHandler.DeleteUser)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AddAllowHeaders(middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
