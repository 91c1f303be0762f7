package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
)

// SettingsRepository stores per-user emergency settings, one row per user.
type SettingsRepository interface {
	Upsert(settings *models.EmergencySettings) error
	GetByUserID(userID string) (*models.EmergencySettings, error)
}

type settingsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSettingsRepository(db *sqlx.DB, logger *zap.Logger) SettingsRepository {
	return &settingsRepository{db: db, logger: logger}
}

func (r *settingsRepository) Upsert(settings *models.EmergencySettings) error {
	query := `INSERT INTO emergency_settings (user_id, code_word, emergency_contact, updated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id) DO UPDATE
	          SET code_word = EXCLUDED.code_word,
	              emergency_contact = EXCLUDED.emergency_contact,
	              updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(query, settings.UserID, settings.CodeWord, settings.EmergencyContact, settings.UpdatedAt)
	return err
}

// GetByUserID returns (nil, nil) when the user has no settings configured.
func (r *settingsRepository) GetByUserID(userID string) (*models.EmergencySettings, error) {
	var settings models.EmergencySettings
	query := `SELECT user_id, code_word, emergency_contact, updated_at FROM emergency_settings WHERE user_id = $1`
	err := r.db.Get(&settings, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}
