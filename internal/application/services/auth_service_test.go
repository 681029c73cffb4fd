package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/domain/entities"
)

func TestLoginSucceedsForPrivilegedRoles(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.accountRepo, env.jwtService)

	env.createAccount(t, "mod@b.com", "secret123", entities.RoleModerator)

	result, err := svc.Login(context.Background(), command.LoginCommand{
		Email:    "mod@b.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "MODERATOR", result.Account.Role)

	claims, err := env.jwtService.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleModerator, claims.Role)
}

func TestLoginRejectsUnprivilegedRoleWithCorrectPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.accountRepo, env.jwtService)

	env.createAccount(t, "user@b.com", "secret123", entities.RoleUser)

	result, err := svc.Login(context.Background(), command.LoginCommand{
		Email:    "user@b.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.accountRepo, env.jwtService)

	env.createAccount(t, "mod@b.com", "secret123", entities.RoleModerator)
	env.createAccount(t, "user@b.com", "secret123", entities.RoleUser)

	cases := []command.LoginCommand{
		{Email: "ghost@b.com", Password: "secret123"}, // unknown account
		{Email: "mod@b.com", Password: "wrong"},       // bad password
		{Email: "user@b.com", Password: "secret123"},  // insufficient role
		{Email: "", Password: ""},                     // empty input
	}

	for _, cmd := range cases {
		_, err := svc.Login(context.Background(), cmd)
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "invalid credentials", apperr.PublicMessage(err))
	}
}

func TestRegisterAlwaysCreatesOrdinaryUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.accountRepo, env.jwtService)

	result, err := svc.Register(context.Background(), command.CreateAccountCommand{
		Email:    "new@b.com",
		Password: "secret123",
		Name:     "New User",
		Role:     "SUPER_ADMIN", // ignored
	})
	require.NoError(t, err)
	assert.Equal(t, "USER", result.Result.Role)

	_, err = svc.Register(context.Background(), command.CreateAccountCommand{
		Email:    "new@b.com",
		Password: "secret123",
		Name:     "Dup",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
