package main

import (
	"context"
	"log"

	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/identity"
	"github.com/joshmassieu-svg/like-wutton-wix-app/internal/router"
	"github.com/joshmassieu-svg/like-wutton-wix-app/pkg/config"
	"github.com/joshmassieu-svg/like-wutton-wix-app/pkg/firebase"
	"github.com/joshmassieu-svg/like-wutton-wix-app/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Pick the identity resolver: Firebase when credentials are configured,
	// otherwise the app-secret HMAC exchange.
	var resolver identity.Resolver
	if cfg.FirebaseCredentialsPath != "" {
		ctx := context.Background()
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		resolver = identity.NewFirebaseResolver(firebaseApp.AuthClient)
	} else {
		if cfg.AppSecret == "" {
			log.Println("Warning: APP_SECRET not set, credential exchange will reject all requests.")
		}
		resolver = identity.NewHMACResolver(cfg.AppSecret)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo.Database(cfg.MongoDB), resolver)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
