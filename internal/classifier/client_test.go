package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/apperr"
)

func TestClassify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/classify", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label": "joy", "score": 0.93}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	result, err := c.Classify(context.Background(), "what a day")

	require.NoError(t, err)
	assert.Equal(t, "joy", result.Label)
	assert.Equal(t, 0.93, result.Confidence)
}

func TestClassify_Non200IsClassifierUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Classify(context.Background(), "text")

	require.Error(t, err)
	assert.Equal(t, apperr.KindClassifier, apperr.KindOf(err))
}

func TestClassify_MalformedBodyIsClassifierUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Classify(context.Background(), "text")

	require.Error(t, err)
	assert.Equal(t, apperr.KindClassifier, apperr.KindOf(err))
}

func TestClassify_OutOfRangeConfidenceIsNotClamped(t *testing.T) {
	for _, body := range []string{
		`{"label": "joy", "score": 1.2}`,
		`{"label": "joy", "score": -0.1}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		c := NewClient(srv.URL, time.Second)
		_, err := c.Classify(context.Background(), "text")
		srv.Close()

		require.Error(t, err, "body %s", body)
		assert.Equal(t, apperr.KindClassifier, apperr.KindOf(err))
	}
}

func TestClassify_TimeoutIsClassifierUnavailable(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Classify(context.Background(), "text")

	require.Error(t, err)
	assert.Equal(t, apperr.KindClassifier, apperr.KindOf(err))
}

func TestClassify_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, time.Minute)
	_, err := c.Classify(ctx, "text")

	require.Error(t, err)
	assert.Equal(t, apperr.KindClassifier, apperr.KindOf(err))
}
