package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Error != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Unwrap() != nil || simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}
