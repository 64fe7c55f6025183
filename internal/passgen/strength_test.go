package passgen

import (
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel string
	}{
		{
			name:      "empty",
			password:  "",
			wantScore: 0,
			wantLabel: "Too short",
		},
		{
			name:      "single lowercase char",
			password:  "a",
			wantScore: 0,
			wantLabel: "Very weak",
		},
		{
			name:      "12 lowercase",
			password:  "aaaaaaaaaaaa", // 12 x log2(26) ~ 56.4 bits
			wantScore: 2,
			wantLabel: "Okay",
		},
		{
			name:      "all four classes length 12",
			password:  "aA1!aA1!aA1!", // 12 x log2(94) ~ 78.6 bits
			wantScore: 3,
			wantLabel: "Strong",
		},
		{
			name:      "all four classes length 20",
			password:  "aA1!aA1!aA1!aA1!aA1!", // 20 x log2(94) ~ 131 bits
			wantScore: 4,
			wantLabel: "Very strong",
		},
		{
			name:      "short digits only",
			password:  "1234567", // 7 x log2(10) ~ 23.3 bits
			wantScore: 1,
			wantLabel: "Weak",
		},
		{
			name:      "characters outside all classes",
			password:  "\t\n\x7f",
			wantScore: 0,
			wantLabel: "Very weak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Estimate(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Estimate(%q).Label = %q, want %q", tt.password, got.Label, tt.wantLabel)
			}
		})
	}
}

func TestEstimateBits(t *testing.T) {
	got := Estimate("aaaaaaaaaaaa")
	want := 12 * math.Log2(26)
	if math.Abs(got.Bits-want) > 1e-9 {
		t.Errorf("Bits = %f, want %f", got.Bits, want)
	}

	if got := Estimate(""); got.Bits != 0 {
		t.Errorf("Bits for empty password = %f, want 0", got.Bits)
	}
	if got := Estimate("\t\t\t"); got.Bits != 0 {
		t.Errorf("Bits for zero-pool password = %f, want 0", got.Bits)
	}
}

func TestEstimatePoolContributions(t *testing.T) {
	// Score ignores which settings produced the string; only observed
	// classes matter.
	tests := []struct {
		password string
		pool     float64
	}{
		{"abc", 26},
		{"ABC", 26},
		{"123", 10},
		{"!?~", 32},
		{"aB3", 62},
		{"aB3#", 94},
	}

	for _, tt := range tests {
		got := Estimate(tt.password)
		want := float64(len(tt.password)) * math.Log2(tt.pool)
		if math.Abs(got.Bits-want) > 1e-9 {
			t.Errorf("Estimate(%q).Bits = %f, want %f", tt.password, got.Bits, want)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	a := Estimate("correct horse battery staple")
	b := Estimate("correct horse battery staple")
	if a != b {
		t.Errorf("Estimate not deterministic: %+v vs %+v", a, b)
	}
}
