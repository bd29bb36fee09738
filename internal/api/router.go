package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/genosentinel/auth-gateway/docs"
	"github.com/genosentinel/auth-gateway/internal/api/handler"
	"github.com/genosentinel/auth-gateway/internal/api/middleware"
	"github.com/genosentinel/auth-gateway/internal/core/service"
	mongodb "github.com/genosentinel/auth-gateway/internal/infrastructure/db/mongo"
	"github.com/genosentinel/auth-gateway/internal/pkg/config"
	"github.com/genosentinel/auth-gateway/internal/upstream"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokenService)

	genomicClient := upstream.NewGenomicClient(cfg.Genomic.BaseURL, cfg.Genomic.Timeout, log)
	clinicClient := upstream.NewClinicClient(cfg.Clinic.BaseURL, cfg.Clinic.Timeout, log)

	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler()
	genomicHandler := handler.NewGenomicHandler(genomicClient)
	clinicHandler := handler.NewClinicHandler(clinicClient)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gateway"))
	e.Use(middleware.Authenticate(tokenService))

	// --- Open routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/validate", authHandler.Validate)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Genomic backend (authenticated) ---
	genomic := e.Group("/genomic", middleware.RequireUser())
	genomic.POST("/genes", genomicHandler.CreateGene)
	genomic.GET("/genes", genomicHandler.ListGenes)
	genomic.GET("/genes/:id", genomicHandler.GetGene)
	genomic.PATCH("/genes/:id", genomicHandler.UpdateGene)
	genomic.DELETE("/genes/:id", genomicHandler.DeleteGene)

	genomic.POST("/variants", genomicHandler.CreateVariant)
	genomic.GET("/variants", genomicHandler.ListVariants)
	genomic.GET("/variants/:id", genomicHandler.GetVariant)
	genomic.PATCH("/variants/:id", genomicHandler.UpdateVariant)
	genomic.DELETE("/variants/:id", genomicHandler.DeleteVariant)

	genomic.POST("/reports", genomicHandler.CreateReport)
	genomic.GET("/reports", genomicHandler.ListReports)
	genomic.GET("/reports/:id", genomicHandler.GetReport)
	genomic.PATCH("/reports/:id", genomicHandler.UpdateReport)
	genomic.DELETE("/reports/:id", genomicHandler.DeleteReport)

	// --- Clinic backend (authenticated) ---
	clinic := e.Group("/nestjs", middleware.RequireUser())
	clinic.POST("/patients", clinicHandler.CreatePatient)
	clinic.GET("/patients", clinicHandler.ListPatients)
	clinic.GET("/patients/:id", clinicHandler.GetPatient)
	clinic.PATCH("/patients/:id", clinicHandler.UpdatePatient)
	clinic.PATCH("/patients/:id/deactivate", clinicHandler.DeactivatePatient)

	clinic.POST("/tumor-types", clinicHandler.CreateTumorType)
	clinic.GET("/tumor-types", clinicHandler.ListTumorTypes)
	clinic.GET("/tumor-types/:id", clinicHandler.GetTumorType)
	clinic.PATCH("/tumor-types/:id", clinicHandler.UpdateTumorType)
	clinic.DELETE("/tumor-types/:id", clinicHandler.DeleteTumorType)

	clinic.POST("/clinical-records", clinicHandler.CreateClinicalRecord)
	clinic.GET("/clinical-records", clinicHandler.ListClinicalRecords)
	clinic.GET("/clinical-records/:id", clinicHandler.GetClinicalRecord)
	clinic.PATCH("/clinical-records/:id", clinicHandler.UpdateClinicalRecord)
	clinic.DELETE("/clinical-records/:id", clinicHandler.DeleteClinicalRecord)

	return e
}
