package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/apperr"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/models"
	"github.com/itsAryan-devop09/mindspace-backend2/internal/trends"
)

type stubService struct {
	analyzeEntry *models.MoodEntry
	analyzeErr   error
	trendsResult map[string]trends.DailyTrend
	trendsErr    error
	checkInErr   error
}

func (s *stubService) AnalyzeText(ctx context.Context, userID, text string) (*models.MoodEntry, error) {
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	return s.analyzeEntry, nil
}

func (s *stubService) SetEmergency(userID, codeWord, contact string) error { return nil }

func (s *stubService) Trends(userID string) (map[string]trends.DailyTrend, error) {
	return s.trendsResult, s.trendsErr
}

func (s *stubService) LogVisual(userID, emotion string, confidence *float64) (*models.VisualEntry, error) {
	return &models.VisualEntry{UserID: userID, Emotion: emotion, Confidence: confidence}, nil
}

func (s *stubService) SubmitCheckIn(userID string, sliderValue float64, tags []string, note string) error {
	return s.checkInErr
}

func newTestRouter(svc MoodService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMoodHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/mood/analyze", h.AnalyzeMood)
	r.GET("/api/mood/trends", h.GetTrends)
	r.POST("/api/checkins", h.SubmitCheckIn)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeMood_OK(t *testing.T) {
	svc := &stubService{analyzeEntry: &models.MoodEntry{
		UserID: "u1", Emotion: "joy", Confidence: 0.9, RiskScore: 0.12,
		RiskLabel: "joy", Crisis: false, TriggerEmergency: false,
	}}
	r := newTestRouter(svc)

	w := doRequest(r, "POST", "/api/mood/analyze", `{"user_id":"u1","text":"a fine day"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"emotion":"joy"`)
	assert.Contains(t, w.Body.String(), `"crisis":false`)
}

func TestAnalyzeMood_MissingFields(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doRequest(r, "POST", "/api/mood/analyze", `{"user_id":"u1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeMood_ClassifierDownMapsTo502(t *testing.T) {
	svc := &stubService{analyzeErr: apperr.ClassifierUnavailable("classifier request failed", nil)}
	r := newTestRouter(svc)

	w := doRequest(r, "POST", "/api/mood/analyze", `{"user_id":"u1","text":"some text"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "classifier_unavailable")
}

func TestAnalyzeMood_StorageDownMapsTo503(t *testing.T) {
	svc := &stubService{analyzeErr: apperr.StorageUnavailable("failed to save mood entry", nil)}
	r := newTestRouter(svc)

	w := doRequest(r, "POST", "/api/mood/analyze", `{"user_id":"u1","text":"some text"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetTrends_OK(t *testing.T) {
	svc := &stubService{trendsResult: map[string]trends.DailyTrend{
		"2024-03-01": {AverageRiskScore: 0.5, EmotionDistribution: map[string]int{"joy": 2}},
	}}
	r := newTestRouter(svc)

	w := doRequest(r, "GET", "/api/mood/trends?user_id=u1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2024-03-01"`)
	assert.Contains(t, w.Body.String(), `"average_risk_score":0.5`)
}

func TestGetTrends_MissingUserIDMapsTo400(t *testing.T) {
	svc := &stubService{trendsErr: apperr.Validation("missing user_id")}
	r := newTestRouter(svc)

	w := doRequest(r, "GET", "/api/mood/trends", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitCheckIn_EmptyTagsMapsTo400(t *testing.T) {
	svc := &stubService{checkInErr: apperr.Validation("tags must not be empty")}
	r := newTestRouter(svc)

	w := doRequest(r, "POST", "/api/checkins", `{"user_id":"u1","slider_value":5,"tags":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitCheckIn_SliderZeroIsValid(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doRequest(r, "POST", "/api/checkins", `{"user_id":"u1","slider_value":0,"tags":["calm"]}`)

	assert.Equal(t, http.StatusOK, w.Code)
}
