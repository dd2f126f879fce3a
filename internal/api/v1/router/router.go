package router

import (
	"net/http"
	"time"

	"staminad/internal/api/v1/handler"
	"staminad/internal/config"
	"staminad/internal/middleware"
	"staminad/internal/repository"
	"staminad/internal/service"
	"staminad/internal/stamina"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) http.Handler {
	// 1. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 2. Initialize repositories & services & handlers. All stores are
	// in-memory; state lives for the process lifetime only.
	readingRepo := repository.NewReadingRepo()
	shareCodeRepo := repository.NewShareCodeRepo()
	professionalRepo := repository.NewProfessionalRepo()

	mode := stamina.ValidationMode(cfg.UserIDValidation)
	staleAfter := time.Duration(cfg.StaleAfterSec) * time.Second

	staminaSvc := service.NewStaminaService(readingRepo, mode, logger)
	shareCodeSvc := service.NewShareCodeService(shareCodeRepo, readingRepo, logger)
	professionalSvc := service.NewProfessionalService(professionalRepo, shareCodeSvc, readingRepo, staleAfter, logger)

	staminaHandler := handler.NewStaminaHandler(staminaSvc, validate, logger)
	shareCodeHandler := handler.NewShareCodeHandler(shareCodeSvc, validate, logger)
	professionalHandler := handler.NewProfessionalHandler(professionalSvc, validate, logger)
	systemHandler := handler.NewSystemHandler(staminaSvc, shareCodeSvc, logger)

	// 3. Initialize middleware. The bearer gate is active only in the
	// legacy single-user deployment (AUTH_TOKEN set).
	authMiddleware := middleware.AuthMiddleware(cfg.AuthToken, logger)

	// 4. Create ServeMux router
	mux := http.NewServeMux()
	staminaHandler.RegisterRoutes(mux, authMiddleware)
	shareCodeHandler.RegisterRoutes(mux)
	professionalHandler.RegisterRoutes(mux)
	systemHandler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	// 5. Apply CORS middleware; the watch and the web dashboard call
	// from arbitrary origins.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})

	return middleware.LoggerMiddleware(logger)(middleware.MetricsMiddleware(c.Handler(mux)))
}
