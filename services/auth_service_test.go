package services

import (
	"testing"

	"fitapi/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestRegisterReturnsPublicIdentity(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	user, err := svc.Register("alice", "pw123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw123", user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	_, err := svc.Register("alice", "pw123")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateIssuesTokenForOwner(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	user, err := svc.Register("alice", "pw123")
	require.NoError(t, err)

	token, err := svc.Authenticate("alice", "pw123")
	require.NoError(t, err)

	claims, err := utils.ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	_, err := svc.Register("alice", "pw123")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate("alice", "nope")
	_, unknownUser := svc.Authenticate("bob", "pw123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
