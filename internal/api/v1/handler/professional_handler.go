package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"staminad/internal/api/v1/dto"
	"staminad/internal/model"
	"staminad/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ProfessionalHandler struct {
	professionalService service.ProfessionalService
	validate            *validator.Validate
	logger              zerolog.Logger
}

func NewProfessionalHandler(professionalService service.ProfessionalService, v *validator.Validate, logger zerolog.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalService: professionalService,
		validate:            v,
		logger:              logger.With().Str("handler", "ProfessionalHandler").Logger(),
	}
}

// RegisterRoutes mounts redemption and the professional dashboard.
func (h *ProfessionalHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/redeem-share-code", h.redeem)
	mux.HandleFunc("/professional/dashboard/", h.dashboard)
}

func (h *ProfessionalHandler) redeem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	var req dto.RedeemShareCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := h.professionalService.RedeemAndAdd(r.Context(), req.ShareCode, req.ProfessionalID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			writeErr(w, http.StatusNotFound, ErrCodeInvalidCode, "Invalid share code")
		case errors.Is(err, service.ErrQuotaExceeded):
			writeErr(w, http.StatusForbidden, ErrCodeQuotaExceeded, "Client limit reached (max 10)")
		default:
			h.logger.Error().Err(err).Str("professional_id", model.TruncateID(req.ProfessionalID)).Msg("Failed to redeem share code")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to redeem share code")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.RedeemResponseDTO{
		Status:      result.Status,
		ClientCount: result.ClientCount,
		MaxClients:  result.MaxClients,
	})
}

func (h *ProfessionalHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	professionalID := strings.TrimPrefix(r.URL.Path, "/professional/dashboard/")
	if professionalID == "" || strings.Contains(professionalID, "/") {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "professionalID path parameter required")
		return
	}

	dash, err := h.professionalService.Dashboard(r.Context(), professionalID)
	if err != nil {
		h.logger.Error().Err(err).Str("professional_id", model.TruncateID(professionalID)).Msg("Failed to render dashboard")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to render dashboard")
		return
	}

	clients := make([]dto.DashboardClientDTO, 0, len(dash.Clients))
	for _, row := range dash.Clients {
		clients = append(clients, dto.DashboardClientDTO{
			UserID:       row.UserID,
			StaminaScore: row.StaminaScore,
			Color:        string(row.ZoneColor),
			LastSeen:     row.LastSeen,
			Connectivity: row.Connectivity,
		})
	}

	writeJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Clients:     clients,
		Tier:        dash.Tier,
		ClientCount: dash.ClientCount,
		MaxClients:  dash.MaxClients,
	})
}
