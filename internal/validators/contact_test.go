package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+12125550142",
		"212-555-0142",
		"(212) 555-0142",
		"+44 20 7946 0958",
		"5550142",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), p)
	}

	invalid := []string{
		"",
		"call me",
		"12345",
		"+",
		"123456789012345678901",
		"555-CALL-NOW",
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), p)
	}
}
