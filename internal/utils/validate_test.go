package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ayesha@example.com",
		"a.b+tag@sub.domain.pk",
		"x@y.co",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"no domain@example.com",
		"missing@tld",
		"@example.com",
		"user@.com ",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+923001234567",
		"+92 300 1234567",
		"0300-1234567",
		"(042) 111-2222",
		"3001234567",
	}
	for _, p := range valid {
		assert.True(t, IsValidPhone(p), p)
	}

	invalid := []string{
		"",
		"   ",
		"call me maybe",
		"123-abc-456",
	}
	for _, p := range invalid {
		assert.False(t, IsValidPhone(p), p)
	}
}
