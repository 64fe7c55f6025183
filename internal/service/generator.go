package service

import (
	"errors"
	"log/slog"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/passgen"
)

const (
	DefaultLength = 16
	MaxLength     = 128
)

var (
	ErrLengthInvalid    = errors.New("password length must be a positive integer")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrNoClassesEnabled = errors.New("at least one character class must be enabled")
)

// similarFallbackWarning is surfaced to callers when the similar-character
// exclusion had to be abandoned to keep the pool non-empty.
const similarFallbackWarning = "exclude_similar ignored: filtering would have removed every available character"

// GeneratorService handles password generation business logic. The core
// generator trusts its caller on length; this layer is that caller and
// clamps requests to a sane range before delegating.
type GeneratorService struct {
	gen *passgen.Generator
}

// NewGeneratorService creates a GeneratorService drawing randomness from
// src. A nil src uses crypto/rand.
func NewGeneratorService(src passgen.Source) *GeneratorService {
	return &GeneratorService{gen: passgen.New(src)}
}

// Generate produces a password based on the given request and scores it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := s.optionsFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return s.generate(opts)
}

// Estimate scores an arbitrary password string.
func (s *GeneratorService) Estimate(password string) passgen.Strength {
	return passgen.Estimate(password)
}

// generate runs validated options through the core and assembles the
// response, including the strength estimate of the actual output.
func (s *GeneratorService) generate(opts passgen.Options) (model.GenerateResponse, error) {
	res, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Password: res.Password,
		Length:   len(res.Password),
		Strength: passgen.Estimate(res.Password),
	}

	if res.SimilarFallback {
		slog.Warn("similar-character exclusion abandoned, pool would be empty",
			"pool_size", res.PoolSize)
		resp.Warning = similarFallbackWarning
	}

	return resp, nil
}

// optionsFromRequest applies defaults and validates the request. Class
// flags default to true when absent, the extra constraints to false.
func (s *GeneratorService) optionsFromRequest(req model.GenerateRequest) (passgen.Options, error) {
	opts := passgen.Options{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeSimilar:   boolOrDefault(req.ExcludeSimilar, false),
		RequireEachClass: boolOrDefault(req.RequireEachClass, false),
	}

	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if opts.Length < 0 {
		return passgen.Options{}, ErrLengthInvalid
	}
	if opts.Length > MaxLength {
		return passgen.Options{}, ErrLengthTooLong
	}
	if !opts.Lowercase && !opts.Uppercase && !opts.Numbers && !opts.Symbols {
		return passgen.Options{}, ErrNoClassesEnabled
	}

	return opts, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
