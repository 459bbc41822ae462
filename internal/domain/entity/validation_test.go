package entity

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "Abcdef1!", false},
		{"too short", "abc", true},
		{"missing uppercase", "abcdef1!", true},
		{"missing lowercase", "ABCDEF1!", true},
		{"missing digit", "Abcdefg!", true},
		{"missing symbol", "Abcdefg1", true},
		{"long valid password", "Sup3r-Secret-Passw0rd!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("ValidatePassword(%q) returned %T, want *ValidationError", tt.password, err)
				}
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("ValidateEmail(valid) = %v, want nil", err)
	}
	if err := ValidateEmail(""); err == nil {
		t.Error("ValidateEmail(empty) = nil, want error")
	}
	if err := ValidateEmail("not-an-email"); err == nil {
		t.Error("ValidateEmail(malformed) = nil, want error")
	}
}
