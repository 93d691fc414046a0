package router

import (
	"log"
	"net/http"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/handlers"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/middleware"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/models"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/repositories"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware. CORS is wide open: the
// widget is embedded on arbitrary third-party sites.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(openCORS())
	log.Println("Global middleware configured.")
}

// openCORS allows any origin and answers OPTIONS preflights itself with a
// 200 and permissive headers. Site-builder embed runtimes expect a 200 on
// preflight, so echo's stock CORS middleware (which replies 204) is not
// used here.
func openCORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response().Header()
			res.Set(echo.HeaderAccessControlAllowOrigin, "*")

			if c.Request().Method == http.MethodOptions {
				res.Set(echo.HeaderAccessControlAllowMethods, "GET,HEAD,POST,PUT,DELETE,OPTIONS")
				res.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
				return c.NoContent(http.StatusOK)
			}

			return next(c)
		}
	}
}

// SetupRoutes configures all application routes and injects dependencies.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgDB *mongo.Database, resolver identity.Resolver) {
	if err := pgdb.AutoMigrate(&models.LikeRecord{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	countRepo := repositories.NewMongoCountRepository(mgDB)

	toggleService := services.NewToggleService(resolver, likeRepo, countRepo)
	statusService := services.NewStatusService(resolver, likeRepo, countRepo)

	api := e.Group("/v1")
	api.Use(middleware.BearerToken())

	likeHandler := handlers.NewLikeHandler(toggleService, statusService)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")
}
