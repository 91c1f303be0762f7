package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("missing user_id")))
	assert.Equal(t, KindClassifier, KindOf(ClassifierUnavailable("down", errors.New("timeout"))))
	assert.Equal(t, KindStorage, KindOf(StorageUnavailable("down", errors.New("refused"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("analyze failed: %w", ClassifierUnavailable("down", nil))
	assert.Equal(t, KindClassifier, KindOf(err))
}

func TestError_MessageIncludesCause(t *testing.T) {
	err := StorageUnavailable("failed to save mood entry", errors.New("connection refused"))
	assert.Equal(t, "failed to save mood entry: connection refused", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := ClassifierUnavailable("down", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestValidation_Formats(t *testing.T) {
	err := Validation("missing field %q", "tags")
	assert.Equal(t, `missing field "tags"`, err.Error())
}
