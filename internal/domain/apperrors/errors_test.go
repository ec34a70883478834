package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validationf("price", "min %d greater than max %d", 5, 1), want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("build: %w", &ValidationError{Field: "year"}), want: http.StatusBadRequest},
		{name: "fetch", err: &FetchError{URL: "http://x", StatusCode: 503}, want: http.StatusBadGateway},
		{name: "export", err: &ExportError{Format: "xlsx", Err: errors.New("boom")}, want: http.StatusInternalServerError},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.err); got != tc.want {
				t.Fatalf("StatusCode=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (&FetchError{URL: "http://x", StatusCode: 500}).Error(); got != "fetch http://x: unexpected status 500" {
		t.Fatalf("unexpected %q", got)
	}
	inner := errors.New("dial tcp: refused")
	fe := &FetchError{URL: "http://x", Err: inner}
	if !errors.Is(fe, inner) {
		t.Fatalf("FetchError should unwrap to its cause")
	}
	if got := Validationf("rating", "min %d greater than max %d", 5, 1).Error(); got != "invalid rating: min 5 greater than max 1" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (&ValidationError{Message: "bare"}).Error(); got != "bare" {
		t.Fatalf("unexpected %q", got)
	}
}
