package repository

import (
	"context"
	"errors"
	"sync"

	"staminad/internal/model"
)

// ErrQuotaExceeded is returned when an account's client list is full.
var ErrQuotaExceeded = errors.New("client quota exceeded")

// AddClientStatus reports the outcome of an AddClient call.
type AddClientStatus string

const (
	// StatusAdded means the client was appended to the list.
	StatusAdded AddClientStatus = "added"
	// StatusAlreadyAdded means the client was already on the list.
	StatusAlreadyAdded AddClientStatus = "already_added"
)

// ProfessionalRepository owns professional accounts and their client
// lists.
type ProfessionalRepository interface {
	// AddClient lazily creates an account for professionalID (starter
	// tier, default quota) and appends userID to its client list. The
	// quota check and the append run under one lock, so concurrent
	// redemptions can never jointly exceed MaxClients. Returns the
	// resulting client count alongside the status; ErrQuotaExceeded
	// when the list is full.
	AddClient(ctx context.Context, professionalID, userID string) (AddClientStatus, int, error)
	// Get returns a copy of the account, or nil if the professional has
	// never redeemed a code. An unknown professional is not an error.
	Get(ctx context.Context, professionalID string) (*model.ProfessionalAccount, error)
}

type professionalRepo struct {
	mu       sync.RWMutex
	accounts map[string]*model.ProfessionalAccount
}

// NewProfessionalRepo creates an empty in-memory ProfessionalRepository.
func NewProfessionalRepo() ProfessionalRepository {
	return &professionalRepo{accounts: make(map[string]*model.ProfessionalAccount)}
}

func (r *professionalRepo) AddClient(ctx context.Context, professionalID, userID string) (AddClientStatus, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[professionalID]
	if !ok {
		acct = &model.ProfessionalAccount{
			ProfessionalID:   professionalID,
			SubscriptionTier: model.TierStarter,
			MaxClients:       model.DefaultMaxClients,
		}
		r.accounts[professionalID] = acct
	}

	for _, id := range acct.ClientUserIDs {
		if id == userID {
			return StatusAlreadyAdded, len(acct.ClientUserIDs), nil
		}
	}

	if len(acct.ClientUserIDs) >= acct.MaxClients {
		return "", len(acct.ClientUserIDs), ErrQuotaExceeded
	}

	acct.ClientUserIDs = append(acct.ClientUserIDs, userID)
	return StatusAdded, len(acct.ClientUserIDs), nil
}

func (r *professionalRepo) Get(ctx context.Context, professionalID string) (*model.ProfessionalAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[professionalID]
	if !ok {
		return nil, nil
	}

	cp := *acct
	cp.ClientUserIDs = append([]string(nil), acct.ClientUserIDs...)
	return &cp, nil
}
