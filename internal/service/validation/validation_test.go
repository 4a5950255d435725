package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	cases := map[string]bool{
		"abc":                   true,
		"player01":              true,
		strings.Repeat("a", 30): true,
		"ab":                    false,
		strings.Repeat("a", 31): false,
		"bad name":              false,
		"bad_name":              false,
		"":                      false,
	}
	for login, want := range cases {
		assert.Equal(t, want, ValidateLogin(login), login)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret"))
	assert.True(t, ValidatePassword(strings.Repeat("p", 72)))
	assert.False(t, ValidatePassword("short"))
	assert.False(t, ValidatePassword(strings.Repeat("p", 73)))
}

func TestValidateBossCode(t *testing.T) {
	assert.True(t, ValidateBossCode("AbCdE"))
	assert.False(t, ValidateBossCode(""))
	assert.False(t, ValidateBossCode("ab-cd"))
}
