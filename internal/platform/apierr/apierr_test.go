package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromFindsWrappedError(t *testing.T) {
	base := NotFound("content_not_found", errors.New("no such page"))
	wrapped := fmt.Errorf("load: %w", base)

	got := From(wrapped)
	if got != base {
		t.Fatalf("From did not unwrap: got=%v", got)
	}
	if !Is(wrapped, KindNotFound) || Is(wrapped, KindValidation) {
		t.Fatalf("Is mismatch for %v", wrapped)
	}
}

func TestFromUnknownIsInternal(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Status != http.StatusInternalServerError || got.Kind != KindInternal || got.Code != "internal_error" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
	if From(nil) != nil {
		t.Fatalf("From(nil) should be nil")
	}
}

func TestStatusPerKind(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{NotFound("x", nil), http.StatusNotFound},
		{Validation("x", nil), http.StatusBadRequest},
		{Provider("x", nil), http.StatusBadGateway},
		{Forbidden("x", nil), http.StatusForbidden},
		{Internal("x", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.want {
			t.Fatalf("%s: got=%d want=%d", tc.err.Kind, tc.err.Status, tc.want)
		}
	}
	if New(http.StatusRequestEntityTooLarge, "upload_too_large", nil).Kind != KindValidation {
		t.Fatalf("4xx should map to validation")
	}
}
