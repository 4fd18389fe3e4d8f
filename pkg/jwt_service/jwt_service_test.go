package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
	jwtservice "github.com/limbo/lifeos/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var user = &entity.User{ID: uuid.New(), Name: "test_user"}

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestNonPositiveTTLFallsBack(t *testing.T) {
	s := jwtservice.New("secret", 0)
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseTokenRejects(t *testing.T) {
	foreign, err := jwtservice.New("other secret", time.Minute).GenerateToken(user)
	require.NoError(t, err)

	s := jwtservice.New("secret", time.Minute)
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("foreign secret", func(t *testing.T) {
		_, err := s.ParseToken(foreign)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
