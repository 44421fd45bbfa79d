package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"majlis/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "Upstream", err: failure.Upstream(errors.New("sheet down")), code: http.StatusBadGateway},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("conflict"), code: http.StatusConflict},
		{name: "SnapshotUnavailable", err: failure.SnapshotUnavailable, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_NilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should be nil")
	}
	if failure.Upstream(nil) != nil {
		t.Error("Upstream(nil) should be nil")
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.NotFound("missing"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected %d through wrapping, got %d", http.StatusNotFound, got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback 500, got %d", got)
	}
}
