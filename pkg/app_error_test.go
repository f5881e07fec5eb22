package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb timeout" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	simple := NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Error() != "PRODUCT_NOT_FOUND: Product not found" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
