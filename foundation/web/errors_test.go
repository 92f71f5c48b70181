package web

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestNewRequestError(t *testing.T) {
	err := NewRequestError(errors.New("boom"), http.StatusNotFound)

	re, ok := IsRequestError(err)
	if !ok {
		t.Fatalf("expected request error")
	}
	if re.Status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", re.Status)
	}
	if re.Error() != "boom" {
		t.Fatalf("unexpected message: %q", re.Error())
	}
}

func TestIsRequestErrorPlainError(t *testing.T) {
	if _, ok := IsRequestError(errors.New("boom")); ok {
		t.Fatalf("plain error must not be a request error")
	}
}
