package http

import (
	"errors"
	"strings"
	"testing"
)

type validationProbe struct {
	ConsumerID string  `json:"consumer_id" validate:"required,hex32"`
	Email      string  `json:"email"       validate:"omitempty,email"`
	Amount     float64 `json:"amount"      validate:"omitempty,gt=0,dec2"`
	Choice     string  `json:"choice"      validate:"omitempty,oneof=APPROVED REJECTED"`
}

func TestValidator_AcceptsValidInput(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&validationProbe{
		ConsumerID: strings.Repeat("a", 32),
		Email:      "alice@example.com",
		Amount:     10000.25,
		Choice:     "APPROVED",
	})
	if err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestValidator_FieldRules(t *testing.T) {
	cv := NewValidator()
	tests := []struct {
		name    string
		in      validationProbe
		field   string
		msgPart string
	}{
		{
			name:    "missing consumer id",
			in:      validationProbe{},
			field:   "consumer_id",
			msgPart: "required",
		},
		{
			name:    "uppercase hex rejected",
			in:      validationProbe{ConsumerID: strings.Repeat("A", 32)},
			field:   "consumer_id",
			msgPart: "hex",
		},
		{
			name:    "three decimal places",
			in:      validationProbe{ConsumerID: strings.Repeat("a", 32), Amount: 10.999},
			field:   "amount",
			msgPart: "decimal",
		},
		{
			name:    "unknown choice",
			in:      validationProbe{ConsumerID: strings.Repeat("a", 32), Choice: "MAYBE"},
			field:   "choice",
			msgPart: "one of",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			details := ToFieldErrors(err)
			if !containsFieldMsg(details, tt.field, tt.msgPart) {
				t.Fatalf("want %s/%s in %+v", tt.field, tt.msgPart, details)
			}
		})
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	details := ToFieldErrors(errors.New("bind failed"))
	if len(details) != 1 || details[0].Field != "_" {
		t.Fatalf("details = %+v", details)
	}
}
