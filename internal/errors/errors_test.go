package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = stderrors.New("sentinel")

func TestIsAny(t *testing.T) {
	err := Wrap(errSentinel, "loading exam")

	assert.True(t, IsAny(err, context.Canceled, errSentinel))
	assert.False(t, IsAny(err, context.Canceled, context.DeadlineExceeded))
	assert.False(t, IsAny(err))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(errSentinel))
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Wrap(errSentinel, "outer"))
	assert.Contains(t, trace, "TestStackTrace")
	assert.Contains(t, trace, "errors_test.go:")
}
