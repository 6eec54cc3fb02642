//go:build unit

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "guest@example.com", want: "guest@example.com"},
		{name: "trims whitespace", input: "  guest@example.com ", want: "guest@example.com"},
		{name: "missing at", input: "guest.example.com", wantErr: true},
		{name: "missing domain", input: "guest@", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "meets policy", input: "sunny1day"},
		{name: "too short", input: "ab1", wantErr: true},
		{name: "letters only", input: "abcdefgh", wantErr: true},
		{name: "digits only", input: "12345678", wantErr: true},
		{name: "mixed with symbols", input: "pa55-word!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPassword(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPasswordTooWeak)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTier(t *testing.T) {
	for _, valid := range []string{"user", "staff", "superuser"} {
		tier, err := NewTier(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, tier.String())
	}

	_, err := NewTier("admin")
	assert.ErrorIs(t, err, ErrInvalidTier)
}
