package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/interfaces"
	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
)

func newListingService(env *testEnv) interfaces.ListingService {
	// nil redis: caching disabled, every read hits the repository.
	return NewListingService(env.listingRepo, env.accountRepo, nil)
}

func TestListingCreateNormalizesStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	result, err := svc.Create(context.Background(), agent.Id, command.CreateListingCommand{
		Title:  "Case Test",
		Price:  250000,
		Status: "active",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", result.Result.Status)

	// Read-back returns the stored uppercase form.
	found, err := svc.Get(context.Background(), result.Result.Id)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", found.Status)
}

func TestListingCreateRejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	cases := []command.CreateListingCommand{
		{Title: "", Price: 100000},
		{Title: "No Price", Price: 0},
		{Title: "Bad Status", Price: 100000, Status: "archived"},
	}
	for _, cmd := range cases {
		_, err := svc.Create(context.Background(), agent.Id, cmd)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	// Nothing was persisted.
	listings, err := env.listingRepo.List(repositories.ListingQuery{})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestListingCreateRequiresExistingOwner(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)

	ghost := entities.NewAccount("ghost@b.com", "pw", "Ghost", entities.RoleAgent)
	_, err := svc.Create(context.Background(), ghost.Id, command.CreateListingCommand{
		Title: "Orphan",
		Price: 100000,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPublicListReturnsPublishedOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	env.createListing(t, agent.Id, func(l *entities.Listing) {
		l.Title = "Visible"
		l.Published = true
	})
	env.createListing(t, agent.Id, func(l *entities.Listing) {
		l.Title = "Draft"
		l.Published = false
	})

	results, err := svc.PublicList(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Visible", results[0].Title)
}

func TestAdminListIncludesUnpublishedWithOwner(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	env.createListing(t, agent.Id, func(l *entities.Listing) { l.Published = true })
	env.createListing(t, agent.Id, func(l *entities.Listing) { l.Published = false })

	results, err := svc.AdminList(context.Background(), interfaces.AdminListingQuery{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		require.NotNil(t, result.Owner)
		assert.Equal(t, "agent@b.com", result.Owner.Email)
	}
}

func TestSearchFilters(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	env.createListing(t, agent.Id, func(l *entities.Listing) {
		l.Title = "Austin Villa"
		l.Price = 300000
		l.Beds = 3
		l.Baths = 2
		l.Address = entities.Address{City: "Austin"}
		l.Published = true
	})
	env.createListing(t, agent.Id, func(l *entities.Listing) {
		l.Title = "Dallas Loft"
		l.Price = 600000
		l.Beds = 2
		l.Baths = 1
		l.Address = entities.Address{City: "Dallas"}
		l.Published = true
	})

	maxPrice := 400000.0
	results, err := svc.Search(context.Background(), interfaces.ListingSearchQuery{
		City:     "Austin",
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Austin Villa", results[0].Title)
}

func TestListingPartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)
	agent := env.createAccount(t, "agent@b.com", "pw", entities.RoleAgent)

	created := env.createListing(t, agent.Id, func(l *entities.Listing) {
		l.Title = "Original"
		l.Description = "Keep me"
		l.Price = 100000
	})

	status := "Sold"
	price := 120000.0
	result, err := svc.Update(context.Background(), created.Id, command.UpdateListingCommand{
		Status: &status,
		Price:  &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "SOLD", result.Result.Status)
	assert.Equal(t, 120000.0, result.Result.Price)
	assert.Equal(t, "Original", result.Result.Title)
	assert.Equal(t, "Keep me", result.Result.Description)
}

func TestListingUpdateAndDeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	svc := newListingService(env)

	missing := entities.NewListing("Ghost", 1, entities.NewAccount("g@b.com", "pw", "G", entities.RoleUser).Id)

	title := "New"
	_, err := svc.Update(context.Background(), missing.Id, command.UpdateListingCommand{Title: &title})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(context.Background(), missing.Id)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSearchCacheKeyEscapesCity(t *testing.T) {
	min := 1.0
	withDelimiter := searchCacheKey(interfaces.ListingSearchQuery{City: "a:1"})
	withPrice := searchCacheKey(interfaces.ListingSearchQuery{City: "a", MinPrice: &min})
	assert.NotEqual(t, withDelimiter, withPrice)
}
