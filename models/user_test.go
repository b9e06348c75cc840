package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/models"
)

func TestNewUserValidation(t *testing.T) {
	_, err := models.NewUser("U1", "Al", "no-at-sign", "1234567890")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = models.NewUser("U1", "", "a@b.com", "1234567890")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = models.NewUser("U1", "Al", "a@b.com", "12345")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	u, err := models.NewUser("U1", "Al", "a@b.com", "1234567890")
	assert.NoError(t, err)
	assert.Equal(t, "Al", u.Name())
	assert.Equal(t, "a@b.com", u.Email())
}

func TestUserMutationKeepsOldValueOnError(t *testing.T) {
	u, err := models.NewUser("U1", "Al", "a@b.com", "1234567890")
	assert.NoError(t, err)

	assert.ErrorIs(t, u.SetEmail("bad"), models.ErrInvalidArgument)
	assert.Equal(t, "a@b.com", u.Email())

	assert.ErrorIs(t, u.SetName("   "), models.ErrInvalidArgument)
	assert.Equal(t, "Al", u.Name())

	assert.ErrorIs(t, u.SetPhone("123"), models.ErrInvalidArgument)
	assert.Equal(t, "1234567890", u.Phone())

	assert.NoError(t, u.SetEmail("new@b.com"))
	assert.Equal(t, "new@b.com", u.Email())
}
