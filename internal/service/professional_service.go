package service

import (
	"context"
	"errors"
	"time"

	"staminad/internal/model"
	"staminad/internal/repository"
	"staminad/internal/stamina"

	"github.com/rs/zerolog"
)

// ErrQuotaExceeded means the professional's client list is full.
var ErrQuotaExceeded = errors.New("client quota exceeded")

// Connectivity states reported on dashboard rows.
const (
	ConnectivityConnected    = "connected"
	ConnectivityDisconnected = "disconnected"
)

// ClientRow is one rendered client on a professional's dashboard.
type ClientRow struct {
	UserID       string
	StaminaScore int
	ZoneColor    stamina.Color
	LastSeen     time.Time
	Connectivity string
}

// Dashboard is the rendered view of a professional's client roster.
type Dashboard struct {
	Clients     []ClientRow
	Tier        string
	ClientCount int
	MaxClients  int
}

// RedeemResult reports the outcome of a code redemption.
type RedeemResult struct {
	Status      string
	UserID      string
	ClientCount int
	MaxClients  int
}

// ProfessionalService defines business logic for the professional
// roster.
type ProfessionalService interface {
	// RedeemAndAdd resolves a share code and adds the resolved user to
	// the professional's client list, creating the account on first
	// redemption. Re-adding an existing client reports already_added
	// and is not an error.
	RedeemAndAdd(ctx context.Context, code, professionalID string) (*RedeemResult, error)
	// Dashboard renders the professional's clients. Unknown
	// professionals get empty defaults rather than an error.
	Dashboard(ctx context.Context, professionalID string) (*Dashboard, error)
}

type professionalService struct {
	professionals repository.ProfessionalRepository
	codes         ShareCodeService
	readings      repository.ReadingRepository
	staleAfter    time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

// NewProfessionalService creates a ProfessionalService. staleAfter is
// the silence window after which a client is reported disconnected.
func NewProfessionalService(professionals repository.ProfessionalRepository, codes ShareCodeService, readings repository.ReadingRepository, staleAfter time.Duration, logger zerolog.Logger) ProfessionalService {
	return &professionalService{
		professionals: professionals,
		codes:         codes,
		readings:      readings,
		staleAfter:    staleAfter,
		logger:        logger.With().Str("service", "ProfessionalService").Logger(),
		now:           time.Now,
	}
}

func (s *professionalService) RedeemAndAdd(ctx context.Context, code, professionalID string) (*RedeemResult, error) {
	// Resolve before touching the roster so an invalid code never
	// creates an account.
	userID, err := s.codes.Redeem(ctx, code)
	if err != nil {
		return nil, err
	}

	status, count, err := s.professionals.AddClient(ctx, professionalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrQuotaExceeded) {
			s.logger.Warn().
				Str("professional_id", model.TruncateID(professionalID)).
				Int("max_clients", model.DefaultMaxClients).
				Msg("Client quota exceeded")
			return nil, ErrQuotaExceeded
		}
		return nil, err
	}

	s.logger.Info().
		Str("professional_id", model.TruncateID(professionalID)).
		Str("user_id", model.TruncateID(userID)).
		Str("status", string(status)).
		Int("clients", count).
		Msg("Share code redeemed")

	return &RedeemResult{
		Status:      string(status),
		UserID:      userID,
		ClientCount: count,
		MaxClients:  model.DefaultMaxClients,
	}, nil
}

func (s *professionalService) Dashboard(ctx context.Context, professionalID string) (*Dashboard, error) {
	acct, err := s.professionals.Get(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return &Dashboard{Clients: []ClientRow{}, Tier: model.TierNone}, nil
	}

	now := s.now()
	rows := make([]ClientRow, 0, len(acct.ClientUserIDs))
	for _, userID := range acct.ClientUserIDs {
		reading, err := s.readings.Get(ctx, userID)
		if err != nil {
			// Membership survives, but a client without data renders no row.
			continue
		}
		connectivity := ConnectivityConnected
		if now.Sub(reading.CapturedAt) > s.staleAfter {
			connectivity = ConnectivityDisconnected
		}
		rows = append(rows, ClientRow{
			UserID:       userID,
			StaminaScore: reading.StaminaScore,
			ZoneColor:    reading.ZoneColor,
			LastSeen:     reading.CapturedAt,
			Connectivity: connectivity,
		})
	}

	return &Dashboard{
		Clients:     rows,
		Tier:        acct.SubscriptionTier,
		ClientCount: len(acct.ClientUserIDs),
		MaxClients:  acct.MaxClients,
	}, nil
}
