package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"staminad/internal/model"
	"staminad/internal/repository"

	"github.com/rs/zerolog"
)

type professionalFixture struct {
	svc           ProfessionalService
	shareCodes    ShareCodeService
	readings      repository.ReadingRepository
	professionals repository.ProfessionalRepository
}

func newProfessionalFixture() *professionalFixture {
	readings := repository.NewReadingRepo()
	codes := NewShareCodeService(repository.NewShareCodeRepo(), readings, zerolog.Nop())
	professionals := repository.NewProfessionalRepo()
	svc := NewProfessionalService(professionals, codes, readings, 5*time.Minute, zerolog.Nop())
	return &professionalFixture{svc: svc, shareCodes: codes, readings: readings, professionals: professionals}
}

// shareUser stores a reading for userID and returns its share code.
func (f *professionalFixture) shareUser(t *testing.T, userID string) string {
	t.Helper()
	if err := f.readings.Put(context.Background(), model.Reading{UserID: userID, StaminaScore: 80, CapturedAt: time.Now()}); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	code, err := f.shareCodes.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return code
}

func TestRedeemAndAddSuccess(t *testing.T) {
	f := newProfessionalFixture()
	code := f.shareUser(t, "alice123456")

	result, err := f.svc.RedeemAndAdd(context.Background(), code, "coach-1")
	if err != nil {
		t.Fatalf("RedeemAndAdd returned error: %v", err)
	}
	if result.Status != string(repository.StatusAdded) {
		t.Fatalf("status = %q; want added", result.Status)
	}
	if result.ClientCount != 1 || result.MaxClients != model.DefaultMaxClients {
		t.Fatalf("counts = (%d, %d); want (1, %d)", result.ClientCount, result.MaxClients, model.DefaultMaxClients)
	}
}

func TestRedeemAndAddInvalidCodeCreatesNoAccount(t *testing.T) {
	f := newProfessionalFixture()

	_, err := f.svc.RedeemAndAdd(context.Background(), "NOPE00", "coach-1")
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("RedeemAndAdd invalid code error = %v; want ErrInvalidCode", err)
	}

	acct, err := f.professionals.Get(context.Background(), "coach-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if acct != nil {
		t.Fatalf("invalid code must not create an account, got %+v", acct)
	}
}

func TestRedeemAndAddIsIdempotent(t *testing.T) {
	f := newProfessionalFixture()
	code := f.shareUser(t, "alice123456")
	ctx := context.Background()

	if _, err := f.svc.RedeemAndAdd(ctx, code, "coach-1"); err != nil {
		t.Fatalf("RedeemAndAdd returned error: %v", err)
	}
	result, err := f.svc.RedeemAndAdd(ctx, code, "coach-1")
	if err != nil {
		t.Fatalf("repeated RedeemAndAdd returned error: %v", err)
	}
	if result.Status != string(repository.StatusAlreadyAdded) {
		t.Fatalf("status = %q; want already_added", result.Status)
	}
	if result.ClientCount != 1 {
		t.Fatalf("client count changed on re-add: %d", result.ClientCount)
	}
}

func TestRedeemAndAddQuota(t *testing.T) {
	f := newProfessionalFixture()
	ctx := context.Background()

	for i := 0; i < model.DefaultMaxClients; i++ {
		code := f.shareUser(t, fmt.Sprintf("user-%03d-abc", i))
		if _, err := f.svc.RedeemAndAdd(ctx, code, "coach-1"); err != nil {
			t.Fatalf("RedeemAndAdd %d returned error: %v", i, err)
		}
	}

	code := f.shareUser(t, "onetoomany1")
	_, err := f.svc.RedeemAndAdd(ctx, code, "coach-1")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("11th client error = %v; want ErrQuotaExceeded", err)
	}
}

func TestDashboardUnknownProfessional(t *testing.T) {
	f := newProfessionalFixture()

	dash, err := f.svc.Dashboard(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if len(dash.Clients) != 0 || dash.Tier != model.TierNone || dash.ClientCount != 0 {
		t.Fatalf("unknown professional dashboard = %+v; want empty defaults", dash)
	}
}

func TestDashboardOmitsClientsWithoutReadings(t *testing.T) {
	f := newProfessionalFixture()
	ctx := context.Background()

	code := f.shareUser(t, "alice123456")
	if _, err := f.svc.RedeemAndAdd(ctx, code, "coach-1"); err != nil {
		t.Fatalf("RedeemAndAdd returned error: %v", err)
	}
	// A roster membership can outlive its reading; seed one directly.
	if _, _, err := f.professionals.AddClient(ctx, "coach-1", "ghost123456"); err != nil {
		t.Fatalf("AddClient returned error: %v", err)
	}

	dash, err := f.svc.Dashboard(ctx, "coach-1")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if len(dash.Clients) != 1 {
		t.Fatalf("rendered rows = %d; want 1 (ghost omitted)", len(dash.Clients))
	}
	if dash.ClientCount != 2 {
		t.Fatalf("client count = %d; want 2 (membership survives)", dash.ClientCount)
	}
	if dash.Clients[0].UserID != "alice123456" {
		t.Fatalf("rendered row = %q; want alice123456", dash.Clients[0].UserID)
	}
}

func TestDashboardConnectivity(t *testing.T) {
	f := newProfessionalFixture()
	ctx := context.Background()

	code := f.shareUser(t, "alice123456")
	if _, err := f.svc.RedeemAndAdd(ctx, code, "coach-1"); err != nil {
		t.Fatalf("RedeemAndAdd returned error: %v", err)
	}

	svc := f.svc.(*professionalService)

	dash, err := f.svc.Dashboard(ctx, "coach-1")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if dash.Clients[0].Connectivity != ConnectivityConnected {
		t.Fatalf("fresh reading connectivity = %q; want connected", dash.Clients[0].Connectivity)
	}

	// Same roster viewed six minutes later: past the staleness window.
	svc.now = func() time.Time { return time.Now().Add(6 * time.Minute) }
	dash, err = f.svc.Dashboard(ctx, "coach-1")
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if dash.Clients[0].Connectivity != ConnectivityDisconnected {
		t.Fatalf("stale reading connectivity = %q; want disconnected", dash.Clients[0].Connectivity)
	}
}
