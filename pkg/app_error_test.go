package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	withDetails := simple.WithDetails([]string{"tag"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
	body := withDetails.ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if fields, ok := body.Details.([]string); !ok || fields[0] != "tag" {
		t.Fatalf("unexpected details: %+v", body.Details)
	}
}
