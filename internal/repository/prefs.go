package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrPrefsNotFound = errors.New("preferences not found")

// PrefsRepository handles generator preferences persistence operations.
type PrefsRepository struct {
	db *sql.DB
}

// NewPrefsRepository creates a new PrefsRepository.
func NewPrefsRepository(db *sql.DB) *PrefsRepository {
	return &PrefsRepository{db: db}
}

// upsertPrefsQuery inserts or replaces a user's single preferences row.
const upsertPrefsQuery = `
	INSERT INTO generator_prefs
		(user_id, length, lowercase, uppercase, numbers, symbols, exclude_similar, require_each_class)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		length             = VALUES(length),
		lowercase          = VALUES(lowercase),
		uppercase          = VALUES(uppercase),
		numbers            = VALUES(numbers),
		symbols            = VALUES(symbols),
		exclude_similar    = VALUES(exclude_similar),
		require_each_class = VALUES(require_each_class),
		updated_at         = CURRENT_TIMESTAMP`

// Upsert saves a user's generator preferences, replacing any existing row.
func (r *PrefsRepository) Upsert(ctx context.Context, prefs *model.Preferences) error {
	_, err := r.db.ExecContext(ctx, upsertPrefsQuery,
		prefs.UserID,
		prefs.Length,
		prefs.Lowercase,
		prefs.Uppercase,
		prefs.Numbers,
		prefs.Symbols,
		prefs.ExcludeSimilar,
		prefs.RequireEachClass,
	)
	return err
}

// GetByUser retrieves a user's saved generator preferences.
func (r *PrefsRepository) GetByUser(ctx context.Context, userID int64) (*model.Preferences, error) {
	query := `SELECT id, user_id, length, lowercase, uppercase, numbers, symbols,
			exclude_similar, require_each_class, created_at, updated_at
		FROM generator_prefs WHERE user_id = ?`

	prefs := &model.Preferences{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.ID, &prefs.UserID, &prefs.Length,
		&prefs.Lowercase, &prefs.Uppercase, &prefs.Numbers, &prefs.Symbols,
		&prefs.ExcludeSimilar, &prefs.RequireEachClass,
		&prefs.CreatedAt, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrefsNotFound
		}
		return nil, err
	}

	return prefs, nil
}

// Delete removes a user's saved preferences, reverting them to defaults.
func (r *PrefsRepository) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM generator_prefs WHERE user_id = ?`, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPrefsNotFound
	}

	return nil
}
