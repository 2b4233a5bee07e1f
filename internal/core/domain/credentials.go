package domain

import "github.com/google/uuid"

// Credentials identifies one Ozon Performance API client. They are owned by
// the settings store and never modified by the control loop.
type Credentials struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	ClientID     string
	ClientSecret string
	Enabled      bool
}
