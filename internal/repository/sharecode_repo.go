package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrCodeNotFound is returned when a share code is not registered.
var ErrCodeNotFound = errors.New("share code not found")

// ShareCodeRepository owns the code<->userID mapping. Codes never
// expire in the current design; see DESIGN.md.
type ShareCodeRepository interface {
	// GetOrCreate returns the live code for userID if one exists.
	// Otherwise it calls mint until the candidate does not collide with
	// an issued code, registers it and returns it. The whole
	// check-and-insert runs under one lock so concurrent calls for the
	// same user always converge on a single code and two users can
	// never share one.
	GetOrCreate(ctx context.Context, userID string, mint func() (string, error)) (string, error)
	// Resolve maps a code back to its userID or returns ErrCodeNotFound.
	Resolve(ctx context.Context, code string) (string, error)
	// Entries returns a copy of the full code->userID mapping.
	Entries(ctx context.Context) map[string]string
}

type shareCodeRepo struct {
	mu         sync.RWMutex
	codeToUser map[string]string
	userToCode map[string]string
}

// NewShareCodeRepo creates an empty in-memory ShareCodeRepository.
func NewShareCodeRepo() ShareCodeRepository {
	return &shareCodeRepo{
		codeToUser: make(map[string]string),
		userToCode: make(map[string]string),
	}
}

func (r *shareCodeRepo) GetOrCreate(ctx context.Context, userID string, mint func() (string, error)) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if code, ok := r.userToCode[userID]; ok {
		return code, nil
	}

	for {
		code, err := mint()
		if err != nil {
			return "", err
		}
		if _, taken := r.codeToUser[code]; taken {
			// Collision in a 36^6 space; resample.
			continue
		}
		r.codeToUser[code] = userID
		r.userToCode[userID] = code
		return code, nil
	}
}

func (r *shareCodeRepo) Resolve(ctx context.Context, code string) (string, error) {
	r.mu.RLock()
	userID, ok := r.codeToUser[code]
	r.mu.RUnlock()
	if !ok {
		return "", ErrCodeNotFound
	}
	return userID, nil
}

func (r *shareCodeRepo) Entries(ctx context.Context) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make(map[string]string, len(r.codeToUser))
	for code, userID := range r.codeToUser {
		entries[code] = userID
	}
	return entries
}
