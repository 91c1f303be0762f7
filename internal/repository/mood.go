package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
)

// EntryRepository is the append-only store for mood, visual and check-in
// records. No update or delete operations exist by design.
type EntryRepository interface {
	SaveMoodEntry(entry *models.MoodEntry) error
	GetMoodEntriesByUser(userID string) ([]models.MoodEntry, error)
	SaveVisualEntry(entry *models.VisualEntry) error
	SaveCheckIn(entry *models.CheckInEntry) error
}

type entryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEntryRepository(db *sqlx.DB, logger *zap.Logger) EntryRepository {
	return &entryRepository{db: db, logger: logger}
}

func (r *entryRepository) SaveMoodEntry(entry *models.MoodEntry) error {
	query := `INSERT INTO mood_entries (user_id, text, emotion, confidence, risk_score, risk_label, crisis, trigger_emergency, timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowx(query, entry.UserID, entry.Text, entry.Emotion, entry.Confidence,
		entry.RiskScore, entry.RiskLabel, entry.Crisis, entry.TriggerEmergency, entry.Timestamp).Scan(&entry.ID)
}

func (r *entryRepository) GetMoodEntriesByUser(userID string) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	query := `SELECT id, user_id, text, emotion, confidence, risk_score, risk_label, crisis, trigger_emergency, timestamp
	          FROM mood_entries WHERE user_id = $1`
	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) SaveVisualEntry(entry *models.VisualEntry) error {
	query := `INSERT INTO visual_entries (user_id, emotion, confidence, timestamp)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowx(query, entry.UserID, entry.Emotion, entry.Confidence, entry.Timestamp).Scan(&entry.ID)
}

func (r *entryRepository) SaveCheckIn(entry *models.CheckInEntry) error {
	query := `INSERT INTO checkins (user_id, slider_value, tags, note, timestamp)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowx(query, entry.UserID, entry.SliderValue, entry.Tags, entry.Note, entry.Timestamp).Scan(&entry.ID)
}
