package passgen

import (
	"fmt"
	"strings"
)

// Class alphabets, concatenated in this fixed order when enabled.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Characters prone to visual confusion, excluded when
	// Options.ExcludeSimilar is set.
	similarChars = "0O1lI|`'\""
)

// Options configures a single password generation.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	RequireEachClass bool
}

// DefaultOptions returns sensible defaults: 16 characters with all classes
// enabled and no extra constraints.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Result carries a generated password plus facts about how it was produced.
type Result struct {
	Password string
	// PoolSize is the number of distinct characters sampling drew from.
	PoolSize int
	// SimilarFallback is true when ExcludeSimilar was requested but
	// filtering would have emptied the pool, so the unfiltered pool was
	// used instead.
	SimilarFallback bool
}

// Generator produces random passwords from class-based character pools.
type Generator struct {
	src Source
}

// New creates a Generator drawing from src. A nil src falls back to
// crypto/rand sampling.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate builds a password of opts.Length characters from the enabled
// class alphabets. Degenerate settings (length <= 0, no class enabled)
// yield an empty password, not an error; the only error condition is a
// failing random source.
func (g *Generator) Generate(opts Options) (Result, error) {
	if opts.Length <= 0 {
		return Result{}, nil
	}

	pools := enabledPools(opts)
	if len(pools) == 0 {
		return Result{}, nil
	}

	allowed := strings.Join(pools, "")
	var fallback bool
	if opts.ExcludeSimilar {
		filtered := dropSimilar(allowed)
		if filtered == "" {
			// Never leave the caller with an unusable pool just
			// because the exclusion was too aggressive.
			fallback = true
		} else {
			allowed = filtered
		}
	}

	buf := make([]byte, 0, opts.Length)

	if opts.RequireEachClass {
		// One representative per enabled class, in pool order. Capped at
		// Length so a short password never has its guarantees shuffled
		// off the end by truncation.
		for _, pool := range pools {
			if len(buf) == opts.Length {
				break
			}
			if opts.ExcludeSimilar {
				pool = dropSimilar(pool)
			}
			if pool == "" {
				continue
			}
			ch, err := g.pick(pool)
			if err != nil {
				return Result{}, err
			}
			buf = append(buf, ch)
		}
	}

	for len(buf) < opts.Length {
		ch, err := g.pick(allowed)
		if err != nil {
			return Result{}, err
		}
		buf = append(buf, ch)
	}

	if err := g.shuffle(buf); err != nil {
		return Result{}, err
	}

	return Result{
		Password:        string(buf[:opts.Length]),
		PoolSize:        len(allowed),
		SimilarFallback: fallback,
	}, nil
}

// enabledPools returns the class alphabets enabled by opts, in the fixed
// canonical order: lower, upper, numbers, symbols.
func enabledPools(opts Options) []string {
	var pools []string
	if opts.Lowercase {
		pools = append(pools, lowercaseChars)
	}
	if opts.Uppercase {
		pools = append(pools, uppercaseChars)
	}
	if opts.Numbers {
		pools = append(pools, numberChars)
	}
	if opts.Symbols {
		pools = append(pools, symbolChars)
	}
	return pools
}

// dropSimilar removes visually ambiguous characters, deduplicating the rest.
func dropSimilar(pool string) string {
	var b strings.Builder
	seen := make(map[byte]bool, len(pool))
	for i := 0; i < len(pool); i++ {
		c := pool[i]
		if seen[c] || strings.IndexByte(similarChars, c) >= 0 {
			continue
		}
		seen[c] = true
		b.WriteByte(c)
	}
	return b.String()
}

// pick draws one uniformly random character from pool.
func (g *Generator) pick(pool string) (byte, error) {
	i, err := g.src.Intn(len(pool))
	if err != nil {
		return 0, fmt.Errorf("sampling character: %w", err)
	}
	return pool[i], nil
}

// shuffle performs a Fisher-Yates shuffle so guaranteed characters do not
// cluster at the front.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
