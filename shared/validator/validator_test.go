package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"majlis/shared/failure"
	"majlis/shared/validator"
)

type createRequest struct {
	Title     string `json:"title"     validate:"required"`
	Attendees int    `json:"attendees" validate:"required,gte=1"`
	Kind      string `json:"kind"      validate:"required,oneof=internal external"`
}

func TestValidate_ValidBody(t *testing.T) {
	body := strings.NewReader(`{"title":"quarterly review","attendees":4,"kind":"internal"}`)

	req := createRequest{}
	if err := validator.Validate(body, &req); err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}

	if req.Title != "quarterly review" {
		t.Errorf("decoded title mismatch: %s", req.Title)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	req := createRequest{}
	err := validator.Validate(strings.NewReader(`{"title":`), &req)

	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", failure.GetCode(err))
	}
}

func TestValidateStruct_RuleViolations(t *testing.T) {
	tests := []struct {
		name string
		req  createRequest
	}{
		{name: "missing title", req: createRequest{Attendees: 2, Kind: "internal"}},
		{name: "zero attendees", req: createRequest{Title: "sync", Kind: "internal"}},
		{name: "unknown kind", req: createRequest{Title: "sync", Attendees: 2, Kind: "hybrid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("approved", "oneof=pending approved rejected"); err != nil {
		t.Errorf("expected valid var, got %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var")
	}
}
