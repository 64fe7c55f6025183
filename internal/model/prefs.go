package model

import "time"

// Preferences represents a user's saved generator settings in the database.
// Each user has at most one row.
type Preferences struct {
	ID               int64
	UserID           int64
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	RequireEachClass bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PreferencesRequest represents a save-preferences request. The stored
// shape mirrors GenerateRequest's settings fields exactly.
type PreferencesRequest struct {
	Length           int   `json:"length"`
	Lowercase        *bool `json:"lowercase"`
	Uppercase        *bool `json:"uppercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeSimilar   *bool `json:"exclude_similar"`
	RequireEachClass *bool `json:"require_each_class"`
}

// PreferencesResponse represents saved generator settings in API responses.
// Saved is false when the user has never stored preferences and the
// defaults are being returned.
type PreferencesResponse struct {
	Length           int       `json:"length"`
	Lowercase        bool      `json:"lowercase"`
	Uppercase        bool      `json:"uppercase"`
	Numbers          bool      `json:"numbers"`
	Symbols          bool      `json:"symbols"`
	ExcludeSimilar   bool      `json:"exclude_similar"`
	RequireEachClass bool      `json:"require_each_class"`
	Saved            bool      `json:"saved"`
	UpdatedAt        time.Time `json:"updated_at,omitzero"`
}
