package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rockdove/aviation-backend/config"
	"github.com/rockdove/aviation-backend/internal/api/handlers"
	"github.com/rockdove/aviation-backend/internal/api/middleware"
	"github.com/rockdove/aviation-backend/internal/api/routes"
	"github.com/rockdove/aviation-backend/internal/auth"
	"github.com/rockdove/aviation-backend/internal/logger"
	pgrepo "github.com/rockdove/aviation-backend/internal/repositories/postgres"
	"github.com/rockdove/aviation-backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	db, err := config.OpenPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	l.Info("PostgreSQL connected")

	var verifier auth.Verifier
	if cfg.AdminSecretHash != "" {
		verifier = auth.NewHashVerifier(cfg.AdminSecretHash)
	} else {
		verifier = auth.NewSecretVerifier(cfg.AdminSecret)
	}

	contacts := pgrepo.NewContactRepo(db)
	rfqs := pgrepo.NewRFQRepo(db)
	careers := pgrepo.NewCareerRepo(db)

	intake := services.NewIntakeService(contacts, rfqs, careers)
	admin := services.NewAdminService(contacts, rfqs, careers)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
			"Content-Length", "Content-MD5", "Content-Type", "Date",
			"X-Api-Version", "Authorization",
		},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Submit:   handlers.NewSubmitHandler(intake, cfg.MaxUploadBytes),
		Admin:    handlers.NewAdminHandler(admin, verifier),
		Verifier: verifier,
	})

	l.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
