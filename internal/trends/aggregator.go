// Package trends computes per-day statistical summaries over a user's mood
// entry history. Aggregation is a pure fold over a snapshot: it never mutates
// stored entries and never recomputes their crisis flags.
package trends

import (
	"math"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
)

const dateLayout = "2006-01-02"

// DefaultMoodSwingStdDev is the sample standard deviation a day's risk scores
// must exceed to be flagged as a mood swing. Risk scores live in [0,1], so the
// inherited 2.0 cutoff can never fire on well-formed data; it is kept
// configurable rather than silently corrected, pending product review.
const DefaultMoodSwingStdDev = 2.0

// DailyTrend is the derived summary for one calendar day. It is recomputed on
// demand and never persisted.
type DailyTrend struct {
	AverageRiskScore    float64        `json:"average_risk_score"`
	EmotionDistribution map[string]int `json:"emotion_distribution"`
	MoodSwing           bool           `json:"mood_swing"`
}

// Aggregator groups entries by calendar day and summarizes each group.
type Aggregator struct {
	moodSwingStdDev float64
}

func NewAggregator(moodSwingStdDev float64) *Aggregator {
	if moodSwingStdDev <= 0 {
		moodSwingStdDev = DefaultMoodSwingStdDev
	}
	return &Aggregator{moodSwingStdDev: moodSwingStdDev}
}

// Aggregate computes the date → DailyTrend mapping for an unordered collection
// of one user's entries. Entries are grouped by the date component of their
// stored timestamp; timestamps are written in UTC at ingest, so grouping is a
// UTC-day policy. Entries without a timestamp are skipped. The result is
// independent of input order.
func (a *Aggregator) Aggregate(entries []models.MoodEntry) map[string]DailyTrend {
	grouped := make(map[string][]models.MoodEntry)
	for _, entry := range entries {
		if entry.Timestamp.IsZero() {
			continue
		}
		key := entry.Timestamp.Format(dateLayout)
		grouped[key] = append(grouped[key], entry)
	}

	result := make(map[string]DailyTrend, len(grouped))
	for date, group := range grouped {
		result[date] = summarize(group, a.moodSwingStdDev)
	}
	return result
}

func summarize(group []models.MoodEntry, swingCutoff float64) DailyTrend {
	scores := make([]float64, 0, len(group))
	distribution := make(map[string]int)

	for _, entry := range group {
		scores = append(scores, entry.RiskScore)
		if entry.Emotion != "" {
			distribution[entry.Emotion]++
		}
	}

	average := 0.0
	if len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		average = round2(sum / float64(len(scores)))
	}

	// Sample variance is undefined for n=1, so a single-entry day never swings.
	moodSwing := false
	if len(scores) >= 2 {
		moodSwing = round2(sampleStdDev(scores)) > swingCutoff
	}

	return DailyTrend{
		AverageRiskScore:    average,
		EmotionDistribution: distribution,
		MoodSwing:           moodSwing,
	}
}

func sampleStdDev(values []float64) float64 {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values) - 1)

	return math.Sqrt(variance)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
