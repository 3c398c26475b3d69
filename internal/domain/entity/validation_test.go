package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "Organic Milk 1L", wantErr: false},
		{name: "single character", input: "a", wantErr: false},
		{name: "empty name", input: "", wantErr: true},
		{name: "name at limit", input: strings.Repeat("a", 200), wantErr: false},
		{name: "name over limit", input: strings.Repeat("a", 201), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("ValidateName(%q) error type = %T, want *ValidationError", tt.input, err)
				}
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		wantErr bool
	}{
		{name: "positive price", price: 12.50, wantErr: false},
		{name: "zero price means free", price: 0, wantErr: false},
		{name: "negative price", price: -0.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(tt.price)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrice(%v) error = %v, wantErr %v", tt.price, err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  bool
	}{
		{name: "positive quantity", quantity: 1, wantErr: false},
		{name: "zero quantity", quantity: 0, wantErr: true},
		{name: "negative quantity", quantity: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuantity(tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuantity(%d) error = %v, wantErr %v", tt.quantity, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Errorf("ValidateDescription(\"\") = %v, want nil", err)
	}
	if err := ValidateDescription(strings.Repeat("d", 2001)); err == nil {
		t.Error("ValidateDescription over limit = nil, want error")
	}
}
