package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-server/internal/domain/entities"
)

func testAccount() *entities.Account {
	return entities.NewAccount("mod@example.com", "pw", "Mod", entities.RoleModerator)
}

func TestGenerateAndParseToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	account := testAccount()

	token, err := svc.GenerateToken(account)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)

	// The decoded role must exactly match the role at issuance time.
	assert.Equal(t, account.Role, claims.Role)
	assert.Equal(t, account.Id, claims.AccountId)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Name, claims.Name)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(testAccount())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	reader := NewJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(testAccount())
	require.NoError(t, err)

	_, err = reader.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsMalformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)

	_, err = svc.ParseToken("")
	assert.Error(t, err)
}
