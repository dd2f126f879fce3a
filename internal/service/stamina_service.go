package service

import (
	"context"
	"errors"
	"math"
	"time"

	"staminad/internal/model"
	"staminad/internal/repository"
	"staminad/internal/stamina"

	"github.com/rs/zerolog"
)

var (
	// ErrReadingNotFound means the user has never reported data.
	ErrReadingNotFound = errors.New("no reading found for user")
	// ErrNoInput means neither a heart rate nor a score was supplied.
	ErrNoInput = errors.New("heart rate or stamina score required")
)

// StaminaService defines business logic for ingesting and reading
// stamina measurements.
type StaminaService interface {
	// Ingest validates userID, derives the stamina score and zone color
	// and stores the reading, overwriting any previous one for the
	// user. When heartRate is present it wins over a pre-computed
	// score; a caller-supplied score is re-validated to [0,100].
	Ingest(ctx context.Context, userID string, heartRate *float64, score *int) (*model.Reading, error)
	// Latest returns the stored reading for userID.
	Latest(ctx context.Context, userID string) (*model.Reading, error)
	// ActiveUsers returns the number of users with a stored reading.
	ActiveUsers(ctx context.Context) int
	// ActiveUserIDs returns the identifiers of users with a stored
	// reading, for diagnostics.
	ActiveUserIDs(ctx context.Context) []string
}

type staminaService struct {
	readings repository.ReadingRepository
	mode     stamina.ValidationMode
	logger   zerolog.Logger
	now      func() time.Time
}

// NewStaminaService creates a StaminaService with the deployment's
// userID validation mode and a scoped logger.
func NewStaminaService(readings repository.ReadingRepository, mode stamina.ValidationMode, logger zerolog.Logger) StaminaService {
	return &staminaService{
		readings: readings,
		mode:     mode,
		logger:   logger.With().Str("service", "StaminaService").Logger(),
		now:      time.Now,
	}
}

func (s *staminaService) Ingest(ctx context.Context, userID string, heartRate *float64, score *int) (*model.Reading, error) {
	if err := stamina.ValidateUserID(userID, s.mode); err != nil {
		return nil, err
	}

	reading := model.Reading{
		UserID:     userID,
		CapturedAt: s.now(),
	}

	switch {
	case heartRate != nil:
		bpm := int(math.Round(*heartRate))
		reading.HeartRateBPM = &bpm
		reading.StaminaScore = stamina.ScoreFromHeartRate(*heartRate)
	case score != nil:
		if err := stamina.ValidateScore(*score); err != nil {
			return nil, err
		}
		reading.StaminaScore = *score
	default:
		return nil, ErrNoInput
	}
	reading.ZoneColor = stamina.ColorFromScore(reading.StaminaScore)

	if err := s.readings.Put(ctx, reading); err != nil {
		s.logger.Error().Err(err).Str("user_id", model.TruncateID(userID)).Msg("Failed to store reading")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", model.TruncateID(userID)).
		Int("score", reading.StaminaScore).
		Str("zone", string(reading.ZoneColor)).
		Msg("Reading stored")
	return &reading, nil
}

func (s *staminaService) Latest(ctx context.Context, userID string) (*model.Reading, error) {
	if err := stamina.ValidateUserID(userID, s.mode); err != nil {
		return nil, err
	}

	reading, err := s.readings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			return nil, ErrReadingNotFound
		}
		return nil, err
	}
	return reading, nil
}

func (s *staminaService) ActiveUsers(ctx context.Context) int {
	return s.readings.Count(ctx)
}

func (s *staminaService) ActiveUserIDs(ctx context.Context) []string {
	return s.readings.UserIDs(ctx)
}
