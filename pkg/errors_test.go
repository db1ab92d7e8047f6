package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", err.HTTPStatus)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "Not found" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
