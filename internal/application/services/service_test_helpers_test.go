package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
	"realty-server/internal/infrastructure"
	"realty-server/internal/infrastructure/db/postgres"
)

type testEnv struct {
	accountRepo repositories.AccountRepository
	listingRepo repositories.ListingRepository
	jwtService  *infrastructure.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return &testEnv{
		accountRepo: postgres.NewAccountRepository(db),
		listingRepo: postgres.NewListingRepository(db),
		jwtService:  infrastructure.NewJWTService("test-secret", time.Hour),
	}
}

func (env *testEnv) createAccount(t *testing.T, email, password string, role entities.Role) *entities.Account {
	t.Helper()
	account := entities.NewAccount(email, password, "Test "+email, role)
	require.NoError(t, account.HashPassword())
	validated, err := entities.NewValidatedAccount(account)
	require.NoError(t, err)
	created, err := env.accountRepo.Create(validated)
	require.NoError(t, err)
	return created
}

func (env *testEnv) createListing(t *testing.T, ownerId uuid.UUID, mutate func(*entities.Listing)) *entities.Listing {
	t.Helper()
	listing := entities.NewListing("Test Listing", 100000, ownerId)
	if mutate != nil {
		mutate(listing)
	}
	validated, err := entities.NewValidatedListing(listing)
	require.NoError(t, err)
	created, err := env.listingRepo.Create(validated)
	require.NoError(t, err)
	return created
}
