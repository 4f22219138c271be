package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("alice123!")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "alice123!", hash)

	assert.True(t, VerifyPassword(hash, "alice123!"))
	assert.False(t, VerifyPassword(hash, "alice124!"))
	assert.False(t, VerifyPassword("", "alice123!"))
}

func TestHashPassword_Distinct(t *testing.T) {
	// bcrypt salts, so two hashes of the same input must differ
	h1 := HashPassword("same-secret")
	h2 := HashPassword("same-secret")
	assert.NotEqual(t, h1, h2)
}
