package validate

import (
	"errors"
	"testing"
)

type sampleInput struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Tier  string `validate:"required,oneof=internal external"`
	Count int    `validate:"min=1"`
}

func TestFieldsFromValidationError(t *testing.T) {
	err := validate.Struct(sampleInput{Email: "nope", Tier: "vip"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := FieldsFromValidationError(err)

	if got := fields["name"]; len(got) != 1 || got[0] != "This field is required" {
		t.Fatalf("name: unexpected messages %v", got)
	}
	if got := fields["email"]; len(got) != 1 || got[0] != "Must be a valid email address" {
		t.Fatalf("email: unexpected messages %v", got)
	}
	if got := fields["tier"]; len(got) != 1 || got[0] != "Must be one of: internal external" {
		t.Fatalf("tier: unexpected messages %v", got)
	}
	if got := fields["count"]; len(got) != 1 || got[0] != "Must be at least 1" {
		t.Fatalf("count: unexpected messages %v", got)
	}
}

func TestFieldsFromValidationErrorNonValidator(t *testing.T) {
	fields := FieldsFromValidationError(errors.New("boom"))
	if got := fields["_"]; len(got) != 1 || got[0] != "boom" {
		t.Fatalf("unexpected fallback %v", fields)
	}
}

func TestFieldsFromValidationErrorValidInput(t *testing.T) {
	err := validate.Struct(sampleInput{Name: "Hall A", Tier: "internal", Count: 2})
	if err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}
