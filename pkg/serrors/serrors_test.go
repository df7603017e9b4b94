package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"urlshot/pkg/serrors"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrQueueFull, "waiting list at capacity (%d)", 5)

	if !errors.Is(err, serrors.ErrQueueFull) {
		t.Fatalf("expected errors.Is to match ErrQueueFull")
	}
	if errors.Is(err, serrors.ErrTimeout) {
		t.Fatalf("did not expect match against ErrTimeout")
	}
	if got := err.Error(); got != "waiting list at capacity (5)" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "could not create session")

	if !errors.Is(err, serrors.ErrUnavailable) {
		t.Fatalf("expected errors.Is to match ErrUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to match the wrapped cause")
	}
	if got := err.Error(); got != "could not create session: connection refused" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestWrap_SurvivesFmtWrapping(t *testing.T) {
	inner := serrors.With(serrors.ErrBadRequest, "invalid URL")
	outer := fmt.Errorf("could not process request: %w", inner)

	if !errors.Is(outer, serrors.ErrBadRequest) {
		t.Fatalf("expected kind to be matchable through fmt.Errorf wrapping")
	}

	var sErr *serrors.Error
	if !errors.As(outer, &sErr) {
		t.Fatalf("expected errors.As to find *serrors.Error")
	}
	if sErr.Kind() != serrors.ErrBadRequest {
		t.Fatalf("unexpected kind: %v", sErr.Kind())
	}
}

func TestError_MessageForms(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{"kind only", serrors.With(serrors.ErrInternal, ""), ""},
		{"msg only", serrors.With(serrors.ErrInternal, "it broke"), "it broke"},
		{"msg and cause", serrors.Wrap(serrors.ErrInternal, cause, "it broke"), "it broke: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == "" {
				return // empty message falls back to cause/kind formatting
			}
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
