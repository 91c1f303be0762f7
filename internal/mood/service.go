// Package mood orchestrates one analysis request: classify, decide, persist,
// escalate. It also covers visual entries, daily check-ins, emergency settings
// and the trend view.
package mood

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/apperr"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/classifier"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/crisis"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/trends"
)

// EntryStore is the append-only record store the service writes to and the
// trend view reads from.
type EntryStore interface {
	SaveMoodEntry(entry *models.MoodEntry) error
	GetMoodEntriesByUser(userID string) ([]models.MoodEntry, error)
	SaveVisualEntry(entry *models.VisualEntry) error
	SaveCheckIn(entry *models.CheckInEntry) error
}

// SettingsStore looks up and stores per-user emergency settings.
// GetByUserID returns (nil, nil) when no settings exist.
type SettingsStore interface {
	Upsert(settings *models.EmergencySettings) error
	GetByUserID(userID string) (*models.EmergencySettings, error)
}

// Notifier delivers emergency escalation alerts. Implementations must tolerate
// being disabled; a nil Notifier is allowed.
type Notifier interface {
	NotifyEmergency(userID, contact, excerpt string) error
}

type Service struct {
	emotionClassifier classifier.Classifier
	riskClassifier    classifier.Classifier
	engine            *crisis.Engine
	aggregator        *trends.Aggregator
	entries           EntryStore
	settings          SettingsStore
	notifier          Notifier
	logger            *zap.Logger
	classifyTimeout   time.Duration
}

func NewService(
	emotionClassifier classifier.Classifier,
	riskClassifier classifier.Classifier,
	engine *crisis.Engine,
	aggregator *trends.Aggregator,
	entries EntryStore,
	settings SettingsStore,
	notifier Notifier,
	logger *zap.Logger,
	classifyTimeout time.Duration,
) *Service {
	if classifyTimeout <= 0 {
		classifyTimeout = 10 * time.Second
	}
	return &Service{
		emotionClassifier: emotionClassifier,
		riskClassifier:    riskClassifier,
		engine:            engine,
		aggregator:        aggregator,
		entries:           entries,
		settings:          settings,
		notifier:          notifier,
		logger:            logger,
		classifyTimeout:   classifyTimeout,
	}
}

// AnalyzeText runs the full pipeline for one text entry and returns the
// persisted record. A classifier failure aborts the call before anything is
// written: crisis decisions are never fabricated from partial results.
func (s *Service) AnalyzeText(ctx context.Context, userID, text string) (*models.MoodEntry, error) {
	if userID == "" {
		return nil, apperr.Validation("missing user_id")
	}
	if text == "" {
		return nil, apperr.Validation("missing text")
	}

	emotionResult, err := s.classify(ctx, s.emotionClassifier, text)
	if err != nil {
		return nil, err
	}

	riskResult, err := s.classify(ctx, s.riskClassifier, text)
	if err != nil {
		return nil, err
	}

	codeWord := ""
	contact := ""
	settings, err := s.settings.GetByUserID(userID)
	if err != nil {
		return nil, apperr.StorageUnavailable("failed to load emergency settings", err)
	}
	if settings != nil {
		codeWord = settings.CodeWord
		contact = settings.EmergencyContact
	}

	decision := s.engine.Evaluate(text, riskResult, codeWord)

	entry := BuildEntry(userID, text, emotionResult, riskResult, decision, time.Now().UTC())
	if err := s.entries.SaveMoodEntry(&entry); err != nil {
		return nil, apperr.StorageUnavailable("failed to save mood entry", err)
	}

	if decision.TriggerEmergency && s.notifier != nil && contact != "" {
		// Best effort: the entry is already durable with trigger_emergency set,
		// so a notification failure must not fail the request.
		if err := s.notifier.NotifyEmergency(userID, contact, text); err != nil {
			s.logger.Error("Failed to send emergency notification",
				zap.String("user_id", userID), zap.Error(err))
		}
	}

	return &entry, nil
}

// SetEmergency stores a user's code word and emergency contact; last write
// wins. The code word is lowercased before storage so matching stays
// case-insensitive.
func (s *Service) SetEmergency(userID, codeWord, contact string) error {
	if userID == "" {
		return apperr.Validation("missing user_id")
	}
	if contact == "" {
		return apperr.Validation("missing emergency_contact")
	}

	settings := &models.EmergencySettings{
		UserID:           userID,
		CodeWord:         strings.ToLower(codeWord),
		EmergencyContact: contact,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := s.settings.Upsert(settings); err != nil {
		return apperr.StorageUnavailable("failed to save emergency settings", err)
	}
	return nil
}

// Trends reads a full snapshot of the user's mood entries and computes the
// per-day summary view.
func (s *Service) Trends(userID string) (map[string]trends.DailyTrend, error) {
	if userID == "" {
		return nil, apperr.Validation("missing user_id")
	}

	entries, err := s.entries.GetMoodEntriesByUser(userID)
	if err != nil {
		return nil, apperr.StorageUnavailable("failed to load mood entries", err)
	}
	return s.aggregator.Aggregate(entries), nil
}

// LogVisual appends an emotion observed by the camera flow. Confidence is
// optional and stored as reported.
func (s *Service) LogVisual(userID, emotion string, confidence *float64) (*models.VisualEntry, error) {
	if userID == "" {
		return nil, apperr.Validation("missing user_id")
	}
	if emotion == "" {
		return nil, apperr.Validation("missing emotion")
	}

	entry := &models.VisualEntry{
		UserID:     userID,
		Emotion:    emotion,
		Confidence: confidence,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.entries.SaveVisualEntry(entry); err != nil {
		return nil, apperr.StorageUnavailable("failed to save visual entry", err)
	}
	return entry, nil
}

// SubmitCheckIn appends a daily check-in. The tag set must be non-empty;
// nothing is persisted when validation fails.
func (s *Service) SubmitCheckIn(userID string, sliderValue float64, tags []string, note string) error {
	if userID == "" {
		return apperr.Validation("missing user_id")
	}
	if len(tags) == 0 {
		return apperr.Validation("tags must not be empty")
	}

	entry := &models.CheckInEntry{
		UserID:      userID,
		SliderValue: sliderValue,
		Tags:        tags,
		Note:        note,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.entries.SaveCheckIn(entry); err != nil {
		return apperr.StorageUnavailable("failed to save check-in", err)
	}
	return nil
}

func (s *Service) classify(ctx context.Context, c classifier.Classifier, text string) (classifier.Result, error) {
	classifyCtx, cancel := context.WithTimeout(ctx, s.classifyTimeout)
	defer cancel()
	return c.Classify(classifyCtx, text)
}
