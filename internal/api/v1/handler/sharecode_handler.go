package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"staminad/internal/api/v1/dto"
	"staminad/internal/model"
	"staminad/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ShareCodeHandler struct {
	shareCodeService service.ShareCodeService
	validate         *validator.Validate
	logger           zerolog.Logger
}

func NewShareCodeHandler(shareCodeService service.ShareCodeService, v *validator.Validate, logger zerolog.Logger) *ShareCodeHandler {
	return &ShareCodeHandler{
		shareCodeService: shareCodeService,
		validate:         v,
		logger:           logger.With().Str("handler", "ShareCodeHandler").Logger(),
	}
}

// RegisterRoutes mounts the share-code generation route.
func (h *ShareCodeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/generate-share-code", h.generate)
}

func (h *ShareCodeHandler) generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	var req dto.GenerateShareCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Validation failed: "+err.Error())
		return
	}

	code, err := h.shareCodeService.Generate(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeErr(w, http.StatusNotFound, ErrCodeUserNotFound, "No data found for user. Send heart rate to /stamina first.")
		default:
			h.logger.Error().Err(err).Str("user_id", model.TruncateID(req.UserID)).Msg("Failed to generate share code")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate share code")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.ShareCodeResponseDTO{ShareCode: code})
}
