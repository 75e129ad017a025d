package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("Groceries")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// Matching is case sensitive.
	_, err = ParseCategory("food")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_Rank(t *testing.T) {
	assert.Equal(t, 0, CategoryFood.Rank())
	assert.Equal(t, 1, CategoryTransport.Rank())
	assert.Equal(t, len(Categories)-1, CategoryOthers.Rank())

	// Unknown categories sort after every known one.
	assert.Equal(t, len(Categories), Category("Bogus").Rank())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{"User", RoleUser, false},
		{"Admin", RoleAdmin, false},
		{"admin", "", true},
		{"", "", true},
		{"Superuser", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
