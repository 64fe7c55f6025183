package service

import (
	"context"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/passgen"
	"github.com/passforge/passforge-go/internal/repository"
)

// PrefsService handles saved generator preferences business logic.
type PrefsService struct {
	repo *repository.PrefsRepository
	gen  *GeneratorService
}

// NewPrefsService creates a new PrefsService.
func NewPrefsService(repo *repository.PrefsRepository, gen *GeneratorService) *PrefsService {
	return &PrefsService{repo: repo, gen: gen}
}

// Save validates and stores a user's generator preferences. Absent class
// flags default to true, absent constraints to false, absent length to the
// generation default, so the stored row is always a complete settings set.
func (s *PrefsService) Save(ctx context.Context, userID int64, req model.PreferencesRequest) (model.PreferencesResponse, error) {
	opts, err := s.gen.optionsFromRequest(model.GenerateRequest(req))
	if err != nil {
		return model.PreferencesResponse{}, err
	}

	prefs := model.Preferences{
		UserID:           userID,
		Length:           opts.Length,
		Lowercase:        opts.Lowercase,
		Uppercase:        opts.Uppercase,
		Numbers:          opts.Numbers,
		Symbols:          opts.Symbols,
		ExcludeSimilar:   opts.ExcludeSimilar,
		RequireEachClass: opts.RequireEachClass,
	}

	if err := s.repo.Upsert(ctx, &prefs); err != nil {
		return model.PreferencesResponse{}, err
	}

	saved, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return model.PreferencesResponse{}, err
	}

	return prefsResponse(saved), nil
}

// Get returns a user's saved preferences, or the defaults with Saved=false
// when nothing has been stored yet.
func (s *PrefsService) Get(ctx context.Context, userID int64) (model.PreferencesResponse, error) {
	prefs, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPrefsNotFound) {
			return defaultPrefsResponse(), nil
		}
		return model.PreferencesResponse{}, err
	}

	return prefsResponse(prefs), nil
}

// Reset deletes a user's saved preferences. Resetting when nothing is
// saved is not an error.
func (s *PrefsService) Reset(ctx context.Context, userID int64) error {
	err := s.repo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrPrefsNotFound) {
		return nil
	}
	return err
}

// GenerateWithSaved produces a password from the user's saved preferences,
// with any fields present in the request overriding the saved values.
// Users without saved preferences fall through to the defaults.
func (s *PrefsService) GenerateWithSaved(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	base := passgen.DefaultOptions()

	prefs, err := s.repo.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrPrefsNotFound) {
		return model.GenerateResponse{}, err
	}
	if err == nil {
		base = passgen.Options{
			Length:           prefs.Length,
			Lowercase:        prefs.Lowercase,
			Uppercase:        prefs.Uppercase,
			Numbers:          prefs.Numbers,
			Symbols:          prefs.Symbols,
			ExcludeSimilar:   prefs.ExcludeSimilar,
			RequireEachClass: prefs.RequireEachClass,
		}
	}

	opts := passgen.Options{
		Length:           base.Length,
		Lowercase:        boolOrDefault(req.Lowercase, base.Lowercase),
		Uppercase:        boolOrDefault(req.Uppercase, base.Uppercase),
		Numbers:          boolOrDefault(req.Numbers, base.Numbers),
		Symbols:          boolOrDefault(req.Symbols, base.Symbols),
		ExcludeSimilar:   boolOrDefault(req.ExcludeSimilar, base.ExcludeSimilar),
		RequireEachClass: boolOrDefault(req.RequireEachClass, base.RequireEachClass),
	}
	if req.Length != 0 {
		opts.Length = req.Length
	}

	if opts.Length < 0 {
		return model.GenerateResponse{}, ErrLengthInvalid
	}
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}
	if !opts.Lowercase && !opts.Uppercase && !opts.Numbers && !opts.Symbols {
		return model.GenerateResponse{}, ErrNoClassesEnabled
	}

	return s.gen.generate(opts)
}

func prefsResponse(p *model.Preferences) model.PreferencesResponse {
	return model.PreferencesResponse{
		Length:           p.Length,
		Lowercase:        p.Lowercase,
		Uppercase:        p.Uppercase,
		Numbers:          p.Numbers,
		Symbols:          p.Symbols,
		ExcludeSimilar:   p.ExcludeSimilar,
		RequireEachClass: p.RequireEachClass,
		Saved:            true,
		UpdatedAt:        p.UpdatedAt,
	}
}

func defaultPrefsResponse() model.PreferencesResponse {
	d := passgen.DefaultOptions()
	return model.PreferencesResponse{
		Length:    d.Length,
		Lowercase: d.Lowercase,
		Uppercase: d.Uppercase,
		Numbers:   d.Numbers,
		Symbols:   d.Symbols,
	}
}
