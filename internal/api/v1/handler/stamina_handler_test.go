package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staminad/internal/repository"
	"staminad/internal/service"
	"staminad/internal/stamina"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

func newStaminaMux() *http.ServeMux {
	readings := repository.NewReadingRepo()
	svc := service.NewStaminaService(readings, stamina.ModePermissive, zerolog.Nop())
	h := NewStaminaHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux, func(next http.Handler) http.Handler { return next })
	return mux
}

func TestIngestRejectsMalformedJSON(t *testing.T) {
	mux := newStaminaMux()

	req := httptest.NewRequest(http.MethodPost, "/stamina", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_request") {
		t.Fatalf("body = %s; want invalid_request code", rec.Body.String())
	}
}

func TestIngestRejectsMissingUserID(t *testing.T) {
	mux := newStaminaMux()

	req := httptest.NewRequest(http.MethodPost, "/stamina", strings.NewReader(`{"heartRate": 70}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestIngestRejectsWrongMethod(t *testing.T) {
	mux := newStaminaMux()

	req := httptest.NewRequest(http.MethodGet, "/stamina", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d; want 405", rec.Code)
	}
}

func TestLatestRequiresUserIDParam(t *testing.T) {
	mux := newStaminaMux()

	req := httptest.NewRequest(http.MethodGet, "/latest", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}
