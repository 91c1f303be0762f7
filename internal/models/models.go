package models

import (
	"time"

	"github.com/lib/pq"
)

// MoodEntry represents one analyzed text entry stored in the 'mood_entries' table.
// Entries are append-only; the crisis flag is decided once at creation time and
// never recomputed by the trend aggregation.
type MoodEntry struct {
	ID               int64     `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	Text             string    `db:"text" json:"text,omitempty"`
	Emotion          string    `db:"emotion" json:"emotion"`
	Confidence       float64   `db:"confidence" json:"confidence"`
	RiskScore        float64   `db:"risk_score" json:"risk_score"`
	RiskLabel        string    `db:"risk_label" json:"risk_label"`
	Crisis           bool      `db:"crisis" json:"crisis"`
	TriggerEmergency bool      `db:"trigger_emergency" json:"trigger_emergency"`
	Timestamp        time.Time `db:"timestamp" json:"timestamp"`
}

// VisualEntry represents an emotion logged from the camera flow, stored in the
// 'visual_entries' table. Kept separate from mood_entries so trend aggregation
// only sees text-analysis entries.
type VisualEntry struct {
	ID         int64     `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	Emotion    string    `db:"emotion" json:"emotion"`
	Confidence *float64  `db:"confidence" json:"confidence,omitempty"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}

// CheckInEntry represents a daily check-in (slider + tags + optional note),
// stored in the 'checkins' table.
type CheckInEntry struct {
	ID          int64          `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"user_id"`
	SliderValue float64        `db:"slider_value" json:"slider_value"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Note        string         `db:"note" json:"note,omitempty"`
	Timestamp   time.Time      `db:"timestamp" json:"timestamp"`
}

// EmergencySettings holds a user's emergency escalation configuration.
// One row per user, last write wins. The code word is stored lowercased.
type EmergencySettings struct {
	UserID           string    `db:"user_id" json:"user_id"`
	CodeWord         string    `db:"code_word" json:"code_word"`
	EmergencyContact string    `db:"emergency_contact" json:"emergency_contact"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
