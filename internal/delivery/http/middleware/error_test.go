package middleware

import (
	"errors"
	"testing"

	"skillmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError_InternalMessagesCollapsed(t *testing.T) {
	err := NewAppError(fiber.StatusInternalServerError, "pgx: connection refused", nil, errors.New("dial tcp"))

	status, msg, _ := normalizeError(err)
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if msg != response.MessageInternalServerError {
		t.Errorf("msg = %q, internal detail leaked", msg)
	}
}

func TestNormalizeError_BadGatewayMessageKept(t *testing.T) {
	err := NewAppError(fiber.StatusBadGateway, "Skill extraction failed", nil, errors.New("quota exceeded"))

	status, msg, _ := normalizeError(err)
	if status != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want 502", status)
	}
	if msg != "Skill extraction failed" {
		t.Errorf("msg = %q, want the handler-supplied message", msg)
	}
}

func TestNormalizeError_ClientErrorsPassThrough(t *testing.T) {
	err := NewAppError(fiber.StatusNotFound, "Team not found", map[string]any{"id": "x"}, nil)

	status, msg, data := normalizeError(err)
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if msg != "Team not found" {
		t.Errorf("msg = %q", msg)
	}
	if data == nil {
		t.Error("data dropped for client error")
	}
}

func TestNormalizeError_UnknownErrorsBecome500(t *testing.T) {
	status, msg, _ := normalizeError(errors.New("boom"))
	if status != fiber.StatusInternalServerError || msg != response.MessageInternalServerError {
		t.Fatalf("got %d %q, want generic 500", status, msg)
	}
}
