package apierror

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

type listQuery struct {
	Status string `validate:"omitempty,oneof=open charged"`
	Limit  int    `validate:"omitempty,min=1,max=1000"`
	Start  string `validate:"omitempty,datetime=2006-01-02"`
}

func TestFromValidationError(t *testing.T) {
	validate := validator.New()

	err := validate.Struct(&listQuery{Status: "closed", Limit: 5000, Start: "01/02/2022"})
	if err == nil {
		t.Fatal("expected validation failures")
	}

	structured := FromValidationError(err)
	if structured == nil {
		t.Fatal("expected a structured error")
	}
	if structured.Code() != http.StatusBadRequest {
		t.Errorf("code %d, want 400", structured.Code())
	}
	for _, field := range []string{"status", "limit", "start"} {
		if len(structured.Errors[field]) == 0 {
			t.Errorf("no problem recorded for %q: %v", field, structured.Errors)
		}
	}
}

func TestFromValidationErrorNonValidatorError(t *testing.T) {
	if got := FromValidationError(http.ErrBodyNotAllowed); got != nil {
		t.Errorf("expected nil for a non-validator error, got %+v", got)
	}
}

func TestNewStructuredAdd(t *testing.T) {
	s := NewStructured(422)
	s.Add("limit", "too big")
	s.Add("limit", "not even a number")

	if s.Code() != 422 {
		t.Errorf("code %d, want 422", s.Code())
	}
	if len(s.Errors["limit"]) != 2 {
		t.Errorf("problems = %v, want 2 entries", s.Errors["limit"])
	}
}
