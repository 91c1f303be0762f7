package trends

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
)

func entry(ts time.Time, emotion string, risk float64) models.MoodEntry {
	return models.MoodEntry{
		UserID:    "u1",
		Emotion:   emotion,
		RiskScore: risk,
		Timestamp: ts,
	}
}

func day(d int, hour int) time.Time {
	return time.Date(2024, 3, d, hour, 30, 0, 0, time.UTC)
}

func TestAggregate_GroupsByCalendarDay(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(1, 9), "joy", 0.2),
		entry(day(1, 21), "sadness", 0.4),
		entry(day(2, 10), "joy", 0.6),
	})

	require.Len(t, result, 2)
	assert.Contains(t, result, "2024-03-01")
	assert.Contains(t, result, "2024-03-02")
}

func TestAggregate_AverageRiskScore(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(1, 9), "joy", 0.9),
		entry(day(1, 10), "fear", 0.1),
	})

	trend := result["2024-03-01"]
	assert.Equal(t, 0.5, trend.AverageRiskScore)
	assert.False(t, trend.MoodSwing, "std dev of [0.9, 0.1] is ~0.57, below the cutoff")
}

func TestAggregate_SingleEntryDay(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(5, 12), "joy", 0.37),
	})

	trend := result["2024-03-05"]
	assert.Equal(t, 0.37, trend.AverageRiskScore, "single-entry average equals the entry's own score")
	assert.False(t, trend.MoodSwing, "sample variance is undefined for n=1")
}

func TestAggregate_EmotionDistribution(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(1, 8), "joy", 0.2),
		entry(day(1, 12), "joy", 0.3),
		entry(day(1, 18), "sadness", 0.4),
		entry(day(1, 19), "", 0.4), // unlabeled entries still score, never count
	})

	trend := result["2024-03-01"]
	assert.Equal(t, map[string]int{"joy": 2, "sadness": 1}, trend.EmotionDistribution)
	assert.Equal(t, 0.33, trend.AverageRiskScore)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	entries := []models.MoodEntry{
		entry(day(1, 8), "joy", 0.2),
		entry(day(1, 12), "anger", 0.8),
		entry(day(2, 9), "fear", 0.5),
		entry(day(3, 9), "joy", 0.1),
		entry(day(3, 23), "sadness", 0.9),
	}

	a := NewAggregator(0)
	expected := a.Aggregate(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.MoodEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, expected, a.Aggregate(shuffled))
	}
}

func TestAggregate_SkipsEntriesWithoutTimestamp(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(time.Time{}, "joy", 0.9),
		entry(day(1, 9), "sadness", 0.4),
	})

	require.Len(t, result, 1)
	assert.Equal(t, 0.4, result["2024-03-01"].AverageRiskScore)
}

func TestAggregate_EmptyInput(t *testing.T) {
	a := NewAggregator(0)
	assert.Empty(t, a.Aggregate(nil))
}

func TestAggregate_MoodSwingWithLoweredCutoff(t *testing.T) {
	// The default 2.0 cutoff is unreachable for [0,1] scores; a configured
	// cutoff makes the flag observable.
	a := NewAggregator(0.3)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(1, 8), "joy", 0.9),
		entry(day(1, 20), "sadness", 0.1),
	})

	assert.True(t, result["2024-03-01"].MoodSwing)
}

func TestAggregate_DefaultCutoffNeverFiresOnValidScores(t *testing.T) {
	a := NewAggregator(0)
	result := a.Aggregate([]models.MoodEntry{
		entry(day(1, 8), "joy", 1.0),
		entry(day(1, 20), "sadness", 0.0),
		entry(day(1, 22), "fear", 1.0),
	})

	assert.False(t, result["2024-03-01"].MoodSwing)
}
