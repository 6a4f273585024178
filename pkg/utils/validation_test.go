package utils

import "testing"

type registration struct {
	Username    string `validate:"required,min=3,max=50"`
	PhoneNumber string `validate:"required,len=9,numeric"`
	AccountType string `validate:"omitempty,oneof=tenant landlord technician admin"`
}

func TestValidateStruct_PhoneNumberRules(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"valid", "712345678", true},
		{"too short", "71234567", false},
		{"too long", "7123456789", false},
		{"non-numeric", "71234567a", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateStruct(&registration{Username: "alice", PhoneNumber: tc.phone})
			if tc.ok && len(errs) > 0 {
				t.Errorf("expected valid, got %v", errs)
			}
			if !tc.ok {
				if _, found := errs["PhoneNumber"]; !found {
					t.Errorf("expected a PhoneNumber error, got %v", errs)
				}
			}
		})
	}
}

func TestValidateStruct_AccountType(t *testing.T) {
	base := registration{Username: "alice", PhoneNumber: "712345678"}

	withRole := base
	withRole.AccountType = "landlord"
	if errs := ValidateStruct(&withRole); len(errs) > 0 {
		t.Errorf("landlord should be accepted, got %v", errs)
	}

	withRole.AccountType = "superuser"
	errs := ValidateStruct(&withRole)
	if _, found := errs["AccountType"]; !found {
		t.Errorf("expected an AccountType error, got %v", errs)
	}
}

func TestValidateStruct_ValidReturnsNil(t *testing.T) {
	if errs := ValidateStruct(&registration{Username: "alice", PhoneNumber: "712345678"}); errs != nil {
		t.Errorf("expected nil for a valid struct, got %v", errs)
	}
}
