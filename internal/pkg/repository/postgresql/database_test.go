package postgresql

import (
	"net/http"
	"testing"

	"worksite/backend/foundation/web"
)

func TestValidateStruct(t *testing.T) {
	type request struct {
		Name  *string
		Count *int
	}

	var d Database

	name := "x"
	if err := d.ValidateStruct(&request{Name: &name}, "Name"); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	err := d.ValidateStruct(&request{}, "Name", "Count")
	if err == nil {
		t.Fatalf("expected error for missing fields")
	}

	re, ok := web.IsRequestError(err)
	if !ok {
		t.Fatalf("expected request error, got %v", err)
	}
	if re.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", re.Status)
	}
	if len(re.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(re.Fields))
	}
}
