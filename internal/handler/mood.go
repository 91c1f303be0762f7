package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/apperr"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/trends"
)

// MoodService is the application surface the handlers call into.
type MoodService interface {
	AnalyzeText(ctx context.Context, userID, text string) (*models.MoodEntry, error)
	SetEmergency(userID, codeWord, contact string) error
	Trends(userID string) (map[string]trends.DailyTrend, error)
	LogVisual(userID, emotion string, confidence *float64) (*models.VisualEntry, error)
	SubmitCheckIn(userID string, sliderValue float64, tags []string, note string) error
}

type MoodHandler interface {
	AnalyzeMood(c *gin.Context)
	SetEmergency(c *gin.Context)
	GetTrends(c *gin.Context)
	LogVisualEmotion(c *gin.Context)
	SubmitCheckIn(c *gin.Context)
}

type moodHandler struct {
	service MoodService
	logger  *zap.Logger
}

func NewMoodHandler(service MoodService, logger *zap.Logger) MoodHandler {
	return &moodHandler{service: service, logger: logger}
}

type analyzeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// AnalyzeMood handles POST /api/mood/analyze
func (h *moodHandler) AnalyzeMood(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing text or user_id"})
		return
	}

	entry, err := h.service.AnalyzeText(c.Request.Context(), req.UserID, req.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emotion":           entry.Emotion,
		"confidence":        entry.Confidence,
		"crisis":            entry.Crisis,
		"risk_score":        entry.RiskScore,
		"risk_label":        entry.RiskLabel,
		"trigger_emergency": entry.TriggerEmergency,
		"message":           "Entry saved successfully",
	})
}

type setEmergencyRequest struct {
	UserID           string `json:"user_id" binding:"required"`
	CodeWord         string `json:"code_word"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

// SetEmergency handles POST /api/emergency
func (h *moodHandler) SetEmergency(c *gin.Context) {
	var req setEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	if err := h.service.SetEmergency(req.UserID, req.CodeWord, req.EmergencyContact); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Emergency code and contact saved successfully."})
}

// GetTrends handles GET /api/mood/trends?user_id=...
func (h *moodHandler) GetTrends(c *gin.Context) {
	userID := c.Query("user_id")

	result, err := h.service.Trends(userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"trends":  result,
		"message": "Mood trends calculated successfully",
	})
}

type visualRequest struct {
	UserID     string   `json:"user_id" binding:"required"`
	Emotion    string   `json:"emotion" binding:"required"`
	Confidence *float64 `json:"confidence"`
}

// LogVisualEmotion handles POST /api/mood/visual
func (h *moodHandler) LogVisualEmotion(c *gin.Context) {
	var req visualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id or emotion"})
		return
	}

	entry, err := h.service.LogVisual(req.UserID, req.Emotion, req.Confidence)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Visual emotion logged successfully",
		"user_id":    entry.UserID,
		"emotion":    entry.Emotion,
		"confidence": entry.Confidence,
	})
}

type checkInRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	SliderValue *float64 `json:"slider_value" binding:"required"`
	Tags        []string `json:"tags"`
	Note        string   `json:"note"`
}

// SubmitCheckIn handles POST /api/checkins
func (h *moodHandler) SubmitCheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := h.service.SubmitCheckIn(req.UserID, *req.SliderValue, req.Tags, req.Note); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-in saved successfully"})
}

// writeError maps the error taxonomy onto HTTP statuses: bad input is the
// caller's to fix, a classifier outage is retryable upstream failure, a
// storage outage asks the caller to retry the whole request.
func (h *moodHandler) writeError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": string(apperr.KindValidation)})
	case apperr.KindClassifier:
		h.logger.Error("Classifier unavailable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "kind": string(apperr.KindClassifier)})
	case apperr.KindStorage:
		h.logger.Error("Storage unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "kind": string(apperr.KindStorage)})
	default:
		h.logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
