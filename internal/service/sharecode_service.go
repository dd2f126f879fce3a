package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"staminad/internal/model"
	"staminad/internal/repository"

	"github.com/rs/zerolog"
)

var (
	// ErrUserNotFound means a share code was requested for a user who
	// has never reported data.
	ErrUserNotFound = errors.New("user has no stored data")
	// ErrInvalidCode means the share code is not registered.
	ErrInvalidCode = errors.New("invalid share code")
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// ShareCodeService issues and resolves short codes that let a
// professional add a user as a monitored client.
type ShareCodeService interface {
	// Generate returns the live code for userID, minting one on first
	// request. A user must have at least one stored reading before a
	// code can be issued.
	Generate(ctx context.Context, userID string) (string, error)
	// Redeem resolves a code to its userID without consuming it; the
	// same code may be redeemed by any number of professionals.
	Redeem(ctx context.Context, code string) (string, error)
	// Entries returns a copy of the full code->userID mapping.
	Entries(ctx context.Context) map[string]string
}

type shareCodeService struct {
	codes    repository.ShareCodeRepository
	readings repository.ReadingRepository
	logger   zerolog.Logger
}

// NewShareCodeService creates a ShareCodeService with a scoped logger.
func NewShareCodeService(codes repository.ShareCodeRepository, readings repository.ReadingRepository, logger zerolog.Logger) ShareCodeService {
	return &shareCodeService{
		codes:    codes,
		readings: readings,
		logger:   logger.With().Str("service", "ShareCodeService").Logger(),
	}
}

func (s *shareCodeService) Generate(ctx context.Context, userID string) (string, error) {
	if _, err := s.readings.Get(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	code, err := s.codes.GetOrCreate(ctx, userID, mintCode)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", model.TruncateID(userID)).Msg("Failed to mint share code")
		return "", err
	}

	s.logger.Info().Str("user_id", model.TruncateID(userID)).Msg("Share code issued")
	return code, nil
}

func (s *shareCodeService) Redeem(ctx context.Context, code string) (string, error) {
	userID, err := s.codes.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return "", ErrInvalidCode
		}
		return "", err
	}
	return userID, nil
}

func (s *shareCodeService) Entries(ctx context.Context) map[string]string {
	return s.codes.Entries(ctx)
}

// mintCode draws a 6-character candidate uniformly from {A-Z,0-9}
// using a cryptographically strong source. Uniqueness against issued
// codes is enforced by the repository.
func mintCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
