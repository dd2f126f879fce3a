package repository

import (
	"context"
	"errors"
	"sync"

	"staminad/internal/model"
)

// ErrReadingNotFound is returned when a user has never reported data.
var ErrReadingNotFound = errors.New("no reading stored for user")

// ReadingRepository stores the most recent reading per user.
type ReadingRepository interface {
	// Put overwrites the stored reading for the user unconditionally.
	Put(ctx context.Context, reading model.Reading) error
	// Get returns the latest reading or ErrReadingNotFound.
	Get(ctx context.Context, userID string) (*model.Reading, error)
	// Count returns the number of users with a stored reading.
	Count(ctx context.Context) int
	// UserIDs returns all user identifiers with a stored reading.
	UserIDs(ctx context.Context) []string
}

// readingRepo is an in-memory ReadingRepository. State lives for the
// process lifetime only; there is no persistence layer behind it.
type readingRepo struct {
	mu       sync.RWMutex
	readings map[string]model.Reading
}

// NewReadingRepo creates an empty in-memory ReadingRepository.
func NewReadingRepo() ReadingRepository {
	return &readingRepo{readings: make(map[string]model.Reading)}
}

func (r *readingRepo) Put(ctx context.Context, reading model.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings[reading.UserID] = reading
	return nil
}

func (r *readingRepo) Get(ctx context.Context, userID string) (*model.Reading, error) {
	r.mu.RLock()
	reading, ok := r.readings[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrReadingNotFound
	}
	// Return a copy so callers never share memory with the store.
	return &reading, nil
}

func (r *readingRepo) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.readings)
}

func (r *readingRepo) UserIDs(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.readings))
	for id := range r.readings {
		ids = append(ids, id)
	}
	return ids
}
