package validator_test

import (
	"testing"

	"github.com/dj1alilou/windyluxury/pkg/validator"

	"github.com/stretchr/testify/assert"
)

type phoneOnly struct {
	Phone string `validate:"required,dz_phone"`
}

func TestDZPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{"local mobile", "0551925318", true},
		{"country code", "+213774123456", true},
		{"carrier 6", "0661234567", true},
		{"spaces stripped", "0551 92 53 18", true},
		{"landline prefix", "0123456789", false},
		{"too short", "55192531", false},
		{"too long", "05519253181", false},
		{"letters", "05519253ab", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validator.ValidateStruct(&phoneOnly{Phone: tc.phone})
			if tc.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}
