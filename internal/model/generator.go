package model

import "github.com/passforge/passforge-go/internal/passgen"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and
// explicit false: the four class flags default to true, the two extra
// constraints default to false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Lowercase        *bool `json:"lowercase"`
	Uppercase        *bool `json:"uppercase"`
	Numbers          *bool `json:"numbers"`
	Symbols          *bool `json:"symbols"`
	ExcludeSimilar   *bool `json:"exclude_similar"`
	RequireEachClass *bool `json:"require_each_class"`
}

// GenerateResponse represents a password generation response. Warning is
// set when the similar-character exclusion had to be abandoned.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength passgen.Strength `json:"strength"`
	Warning  string           `json:"warning,omitempty"`
}

// StrengthRequest represents a standalone strength estimation request.
type StrengthRequest struct {
	Password string `json:"password"`
}
