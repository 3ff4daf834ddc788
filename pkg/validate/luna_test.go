package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid number", "79927398713", true},
		{"Wrong check digit", "79927398710", false},
		{"Letters", "12ab", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLuna(tt.input))
		})
	}
}

func TestNewReferralCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := NewReferralCode()
		assert.Len(t, code, ReferralCodeLength)
		assert.True(t, IsReferralCode(code), code)
	}
}

func TestIsReferralCode(t *testing.T) {
	assert.True(t, IsReferralCode("1234567897"))
	assert.False(t, IsReferralCode("1234567890"))
	assert.False(t, IsReferralCode("79927398713"))
}
