// Package errors is the single import for error handling inside examhub:
// stdlib matching plus pkg/errors wrapping with stack traces.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// maxStackFrames bounds the frames rendered by StackTrace.
const maxStackFrames = 16

func New(text string) error {
	return pkgerrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// IsAny reports whether err matches at least one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace renders the deepest recorded stack of err as "func file:line" frames
// separated by " | ". It is empty when no layer of err captured a stack.
func StackTrace(err error) string {
	var deepest pkgerrors.StackTrace
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st.StackTrace()
		}
	}

	if len(deepest) == 0 {
		return ""
	}

	if len(deepest) > maxStackFrames {
		deepest = deepest[:maxStackFrames]
	}

	frames := make([]string, 0, len(deepest))
	for _, frame := range deepest {
		frames = append(frames, fmt.Sprintf("%n %s:%d", frame, frame, frame))
	}

	return strings.Join(frames, " | ")
}
