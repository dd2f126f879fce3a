package handler

import (
	"net/http"
	"time"

	"staminad/internal/api/v1/dto"
	"staminad/internal/model"
	"staminad/internal/service"

	"github.com/rs/zerolog"
)

const serviceName = "stamina-api"

// SystemHandler serves the banner, health check and debug dumps.
type SystemHandler struct {
	staminaService   service.StaminaService
	shareCodeService service.ShareCodeService
	logger           zerolog.Logger
}

func NewSystemHandler(staminaService service.StaminaService, shareCodeService service.ShareCodeService, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		staminaService:   staminaService,
		shareCodeService: shareCodeService,
		logger:           logger.With().Str("handler", "SystemHandler").Logger(),
	}
}

// RegisterRoutes mounts the public system routes and the debug dumps.
func (h *SystemHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/health", h.health)
	mux.HandleFunc("/debug/users", h.debugUsers)
	mux.HandleFunc("/debug/share-codes", h.debugShareCodes)
}

func (h *SystemHandler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "Not Found")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	writeJSON(w, http.StatusOK, dto.RootResponseDTO{
		Message:   "Stamina API",
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Endpoints: map[string]string{
			"POST /stamina":                              "Calculate stamina score from heart rate (requires userID)",
			"GET /latest?userID=xxx":                     "Fetch the most recent stamina result for user",
			"GET /health":                                "Health check endpoint",
			"POST /generate-share-code":                  "Issue a share code for a user with data",
			"POST /redeem-share-code":                    "Add a shared user to a professional's client list",
			"GET /professional/dashboard/{professional}": "Render a professional's client dashboard",
		},
	})
}

func (h *SystemHandler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	writeJSON(w, http.StatusOK, dto.HealthResponseDTO{
		Status:     "ok",
		Timestamp:  time.Now().UTC(),
		Service:    serviceName,
		UsersCount: h.staminaService.ActiveUsers(r.Context()),
	})
}

// Debug dumps never expose full identifiers; see model.TruncateID.

func (h *SystemHandler) debugUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	userIDs := h.staminaService.ActiveUserIDs(r.Context())
	truncated := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		truncated = append(truncated, model.TruncateID(id))
	}

	writeJSON(w, http.StatusOK, dto.DebugUsersResponseDTO{
		TotalUsers: len(userIDs),
		UserIDs:    truncated,
	})
}

func (h *SystemHandler) debugShareCodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, ErrCodeInvalidRequest, "Method Not Allowed")
		return
	}

	entries := h.shareCodeService.Entries(r.Context())
	codes := make([]dto.DebugShareCodeDTO, 0, len(entries))
	for code, userID := range entries {
		codes = append(codes, dto.DebugShareCodeDTO{
			ShareCode: code,
			UserID:    model.TruncateID(userID),
		})
	}

	writeJSON(w, http.StatusOK, dto.DebugShareCodesResponseDTO{
		TotalCodes: len(codes),
		Codes:      codes,
	})
}
