package model

// Subscription tiers for professional accounts.
const (
	TierStarter = "starter"
	// TierNone is reported for professionals that have never redeemed a code.
	TierNone = "none"
)

// DefaultMaxClients is the client quota for the starter tier.
const DefaultMaxClients = 10

// ProfessionalAccount tracks a coach or clinician's monitored clients.
// Accounts are created lazily on the first successful code redemption
// and never destroyed.
type ProfessionalAccount struct {
	ProfessionalID   string   `json:"professional_id"`
	ClientUserIDs    []string `json:"client_user_ids"`
	SubscriptionTier string   `json:"subscription_tier"`
	MaxClients       int      `json:"max_clients"`
}
