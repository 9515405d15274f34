package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrCourseNotFound))
	assert.True(t, IsNotFound(ErrOutcomeNotFound))
	assert.True(t, IsNotFound(ErrNoAttainmentData))
	assert.True(t, IsNotFound(fmt.Errorf("resolve: %w", ErrStudentNotFound)))

	assert.False(t, IsNotFound(ErrInvalidThresholds))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestParseUintParam(t *testing.T) {
	v, ok := ParseUintParam("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), v)

	_, ok = ParseUintParam("0")
	assert.False(t, ok)

	_, ok = ParseUintParam("-1")
	assert.False(t, ok)

	_, ok = ParseUintParam("abc")
	assert.False(t, ok)

	_, ok = ParseUintParam("")
	assert.False(t, ok)
}
