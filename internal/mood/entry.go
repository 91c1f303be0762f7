package mood

import (
	"math"
	"strings"
	"time"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/classifier"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/crisis"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
)

// BuildEntry assembles the immutable record persisted for one analyzed text
// entry. Confidence and risk score are both rounded half-up to two decimals.
// The original text casing is preserved; lowercasing happens only inside the
// crisis engine for matching.
func BuildEntry(userID, text string, emotion, risk classifier.Result, decision crisis.Decision, now time.Time) models.MoodEntry {
	return models.MoodEntry{
		UserID:           userID,
		Text:             text,
		Emotion:          emotion.Label,
		Confidence:       round2(emotion.Confidence),
		RiskScore:        round2(risk.Confidence),
		RiskLabel:        strings.ToLower(risk.Label),
		Crisis:           decision.Crisis,
		TriggerEmergency: decision.TriggerEmergency,
		Timestamp:        now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
