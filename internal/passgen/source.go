package passgen

import (
	"crypto/rand"
	"math/big"
)

// Source supplies uniform random integers for the generator. Injecting it
// keeps Generate deterministic under test and lets the sampling backend be
// swapped without touching the algorithm.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n). n must be > 0.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use and is
// the source every production caller should pass.
type CryptoSource struct{}

// Intn returns a uniform random integer in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
