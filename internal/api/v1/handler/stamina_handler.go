package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"staminad/internal/api/v1/dto"
	"staminad/internal/model"
	"staminad/internal/service"
	"staminad/internal/stamina"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type StaminaHandler struct {
	staminaService service.StaminaService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewStaminaHandler(staminaService service.StaminaService, v *validator.Validate, logger zerolog.Logger) *StaminaHandler {
	return &StaminaHandler{
		staminaService: staminaService,
		validate:       v,
		logger:         logger.With().Str("handler", "StaminaHandler").Logger(),
	}
}

// RegisterRoutes mounts the ingestion and dashboard-read routes. The
// auth gate applies to ingestion only; it is a no-op outside the
// legacy single-user deployment.
func (h *StaminaHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/stamina", authMw(http.HandlerFunc(h.ingest)))
	mux.HandleFunc("/latest", h.latest)
}

func (h *StaminaHandler) ingest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	var req dto.StaminaIngestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Validation failed: "+err.Error())
		return
	}

	reading, err := h.staminaService.Ingest(r.Context(), req.UserID, req.HeartRate, req.StaminaScore)
	if err != nil {
		switch {
		case errors.Is(err, stamina.ErrInvalidUserID):
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidUserID, "Invalid userID format")
		case errors.Is(err, stamina.ErrInvalidScore):
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidScore, "staminaScore must be between 0 and 100")
		case errors.Is(err, service.ErrNoInput):
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "heartRate or staminaScore required")
		default:
			h.logger.Error().Err(err).Str("user_id", model.TruncateID(req.UserID)).Msg("Failed to ingest reading")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to store reading")
		}
		return
	}

	writeJSON(w, http.StatusOK, toReadingDTO(reading))
}

func (h *StaminaHandler) latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	userID := r.URL.Query().Get("userID")
	if userID == "" {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "userID query parameter required")
		return
	}

	reading, err := h.staminaService.Latest(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stamina.ErrInvalidUserID):
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidUserID, "Invalid userID format")
		case errors.Is(err, service.ErrReadingNotFound):
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, "No data found for user. Send heart rate to /stamina first.")
		default:
			h.logger.Error().Err(err).Str("user_id", model.TruncateID(userID)).Msg("Failed to fetch latest reading")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to fetch reading")
		}
		return
	}

	writeJSON(w, http.StatusOK, toReadingDTO(reading))
}

func toReadingDTO(reading *model.Reading) dto.ReadingResponseDTO {
	return dto.ReadingResponseDTO{
		HeartRate:    reading.HeartRateBPM,
		StaminaScore: reading.StaminaScore,
		Color:        string(reading.ZoneColor),
		Timestamp:    reading.CapturedAt,
		UserID:       reading.UserID,
	}
}
