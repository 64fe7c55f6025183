package passgen

import "math"

// Strength is a coarse estimate of how hard a password is to brute-force,
// derived only from the character classes observed in the string.
type Strength struct {
	Score int     `json:"score"` // 0-4
	Label string  `json:"label"`
	Bits  float64 `json:"bits"` // approximate entropy, length x log2(pool)
}

var strengthLabels = [5]string{"Very weak", "Weak", "Okay", "Strong", "Very strong"}

// Per-class contributions to the effective pool size. Symbols count the 32
// printable ASCII characters that are neither letters nor digits.
const (
	lowerPool  = 26
	upperPool  = 26
	digitPool  = 10
	symbolPool = 32
)

// Estimate scores a password by the classes it actually contains, not by
// the settings that produced it. It is total: any input, including
// characters outside every class, yields a valid result.
func Estimate(password string) Strength {
	if password == "" {
		return Strength{Score: 0, Label: "Too short"}
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= '!' && c <= '~':
			hasSymbol = true
		}
	}

	pool := 0
	if hasLower {
		pool += lowerPool
	}
	if hasUpper {
		pool += upperPool
	}
	if hasDigit {
		pool += digitPool
	}
	if hasSymbol {
		pool += symbolPool
	}

	var bits float64
	if pool > 0 {
		bits = float64(len(password)) * math.Log2(float64(pool))
	}

	var score int
	switch {
	case bits > 80:
		score = 4
	case bits > 60:
		score = 3
	case bits > 40:
		score = 2
	case bits > 20:
		score = 1
	}

	return Strength{Score: score, Label: strengthLabels[score], Bits: bits}
}
