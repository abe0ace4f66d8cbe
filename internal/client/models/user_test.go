package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayName(t *testing.T) {
	full := &User{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	assert.Equal(t, "John Doe", full.DisplayName())

	partial := &User{Email: "john@example.com", IdentityPending: true}
	assert.Equal(t, "john@example.com", partial.DisplayName())
}
