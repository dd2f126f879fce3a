package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staminad/internal/repository"
	"staminad/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

func newProfessionalMux() *http.ServeMux {
	readings := repository.NewReadingRepo()
	codes := service.NewShareCodeService(repository.NewShareCodeRepo(), readings, zerolog.Nop())
	svc := service.NewProfessionalService(repository.NewProfessionalRepo(), codes, readings, 5*time.Minute, zerolog.Nop())
	h := NewProfessionalHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func TestDashboardRequiresPathParam(t *testing.T) {
	mux := newProfessionalMux()

	req := httptest.NewRequest(http.MethodGet, "/professional/dashboard/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestDashboardUnknownProfessionalDefaults(t *testing.T) {
	mux := newProfessionalMux()

	req := httptest.NewRequest(http.MethodGet, "/professional/dashboard/coach-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"tier":"none"`) || !strings.Contains(body, `"clients":[]`) {
		t.Fatalf("body = %s; want empty defaults", body)
	}
}

func TestRedeemRejectsMissingFields(t *testing.T) {
	mux := newProfessionalMux()

	req := httptest.NewRequest(http.MethodPost, "/redeem-share-code", strings.NewReader(`{"shareCode": "ABC123"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}
