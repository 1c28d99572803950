package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsFindsWrappedError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("submit: %w", Internal("Failed to save record", cause))

	appErr, ok := As(err)
	if !ok {
		t.Fatalf("expected an apperror in the chain")
	}
	if appErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.Status)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable with errors.Is")
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(Conflict("dup")); got != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got)
	}
	if got := StatusOf(NotFound("Form not found", nil)); got != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got)
	}
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error, got %d", got)
	}
}

func TestErrorString(t *testing.T) {
	if got := BadRequest("bad").Error(); got != "400 bad" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Wrap(500, "oops", errors.New("db")).Error(); got != "500 oops: db" {
		t.Fatalf("unexpected message %q", got)
	}
}
