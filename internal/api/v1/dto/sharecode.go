package dto

// GenerateShareCodeDTO is used for incoming share-code requests.
type GenerateShareCodeDTO struct {
	UserID string `json:"userID" validate:"required"`
}

// ShareCodeResponseDTO is returned when a share code is issued.
type ShareCodeResponseDTO struct {
	ShareCode string `json:"shareCode"`
}

// RedeemShareCodeDTO is used for incoming code redemptions.
type RedeemShareCodeDTO struct {
	ShareCode      string `json:"shareCode" validate:"required"`
	ProfessionalID string `json:"professionalID" validate:"required"`
}

// RedeemResponseDTO reports the redemption outcome.
type RedeemResponseDTO struct {
	Status      string `json:"status"`
	ClientCount int    `json:"clientCount"`
	MaxClients  int    `json:"maxClients"`
}
