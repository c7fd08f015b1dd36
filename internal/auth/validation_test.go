package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"yoga@studio.com",
		"first.last@example.co.uk",
		"a@b.co",
	}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@missing-local.com",
		"missing-domain@",
		"no-dot@domain",
		"dot-first@.com",
		"dot-last@domain.",
		strings.Repeat("a", 45) + "@long.com", // over 50 runes
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Ana"))
	assert.True(t, ValidateName("Hélène"))
	assert.True(t, ValidateName(strings.Repeat("a", 20)))

	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName("Al"))
	assert.False(t, ValidateName("   "))
	assert.False(t, ValidateName(strings.Repeat("a", 21)))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("abc"))
	assert.True(t, ValidatePassword("test!1234"))
	assert.True(t, ValidatePassword(strings.Repeat("x", 40)))

	assert.False(t, ValidatePassword("ab"))
	assert.False(t, ValidatePassword(strings.Repeat("x", 41)))
}
