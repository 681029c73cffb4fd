package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleIsPrivileged(t *testing.T) {
	assert.False(t, RoleUser.IsPrivileged())
	assert.False(t, RoleAgent.IsPrivileged())
	assert.True(t, RoleModerator.IsPrivileged())
	assert.True(t, RoleSuperAdmin.IsPrivileged())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("moderator")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, role)

	role, err = ParseRole(" Super_Admin ")
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, role)

	_, err = ParseRole("owner")
	assert.Error(t, err)
}

func TestAccountPasswordHashing(t *testing.T) {
	account := NewAccount("a@b.com", "secret123", "A B", RoleUser)
	require.NoError(t, account.HashPassword())

	assert.NotEqual(t, "secret123", account.Password)
	assert.NoError(t, account.CheckPassword("secret123"))
	assert.Error(t, account.CheckPassword("wrong"))
}

func TestNewValidatedAccount(t *testing.T) {
	_, err := NewValidatedAccount(NewAccount("", "pw", "Name", RoleUser))
	assert.Error(t, err)

	_, err = NewValidatedAccount(NewAccount("a@b.com", "", "Name", RoleUser))
	assert.Error(t, err)

	_, err = NewValidatedAccount(NewAccount("a@b.com", "pw", "Name", Role("GHOST")))
	assert.Error(t, err)

	validated, err := NewValidatedAccount(NewAccount("a@b.com", "pw", "Name", RoleAgent))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", validated.GetAccount().Email)
}
