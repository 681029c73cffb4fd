package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/common"
	"realty-server/internal/application/interfaces"
	"realty-server/internal/application/mapper"
	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
	"realty-server/internal/infrastructure"
)

type ListingService struct {
	listingRepo  repositories.ListingRepository
	accountRepo  repositories.AccountRepository
	redisService *infrastructure.RedisService
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	accountRepo repositories.AccountRepository,
	redisService *infrastructure.RedisService,
) interfaces.ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		accountRepo:  accountRepo,
		redisService: redisService,
	}
}

func (s *ListingService) Create(ctx context.Context, ownerId uuid.UUID, cmd command.CreateListingCommand) (*command.CreateListingCommandResult, error) {
	owner, err := s.accountRepo.FindById(ownerId)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if owner == nil {
		return nil, apperr.NotFound("owner account not found")
	}

	listing := entities.NewListing(cmd.Title, cmd.Price, ownerId)
	listing.Description = cmd.Description
	listing.Beds = cmd.Beds
	listing.Baths = cmd.Baths
	listing.Sqft = cmd.Sqft
	listing.Address = cmd.Address
	listing.Published = cmd.Published
	listing.Featured = cmd.Featured
	if cmd.Images != nil {
		listing.Images = cmd.Images
	}
	if cmd.Status != "" {
		// The write boundary normalizes any case variant.
		status, err := entities.ParseListingStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
		listing.Status = status
	}

	validated, err := entities.NewValidatedListing(listing)
	if err != nil {
		return nil, err
	}

	created, err := s.listingRepo.Create(validated)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.redisService.InvalidateListings(ctx)

	return &command.CreateListingCommandResult{
		Result: mapper.NewListingResultFromEntity(created),
	}, nil
}

func (s *ListingService) PublicList(ctx context.Context) ([]*common.ListingResult, error) {
	var cached []*common.ListingResult
	if s.redisService.GetListings(ctx, "public", &cached) {
		return cached, nil
	}

	listings, err := s.listingRepo.List(repositories.ListingQuery{PublishedOnly: true})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	results := mapper.NewListingResultsFromEntities(listings)
	s.redisService.SetListings(ctx, "public", results)
	return results, nil
}

func (s *ListingService) Search(ctx context.Context, query interfaces.ListingSearchQuery) ([]*common.ListingResult, error) {
	key := searchCacheKey(query)

	var cached []*common.ListingResult
	if s.redisService.GetListings(ctx, key, &cached) {
		return cached, nil
	}

	listings, err := s.listingRepo.List(repositories.ListingQuery{
		PublishedOnly: true,
		City:          query.City,
		MinPrice:      query.MinPrice,
		MaxPrice:      query.MaxPrice,
		Beds:          query.Beds,
		Baths:         query.Baths,
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	results := mapper.NewListingResultsFromEntities(listings)
	s.redisService.SetListings(ctx, key, results)
	return results, nil
}

func searchCacheKey(query interfaces.ListingSearchQuery) string {
	f := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%g", *p)
	}
	n := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *p)
	}
	// The city is caller input; escaping keeps it from colliding with the
	// key delimiters.
	return fmt.Sprintf("search:%s:%s:%s:%s:%s",
		url.QueryEscape(query.City), f(query.MinPrice), f(query.MaxPrice), n(query.Beds), n(query.Baths))
}

func (s *ListingService) AdminList(ctx context.Context, query interfaces.AdminListingQuery) ([]*common.ListingResult, error) {
	repoQuery := repositories.ListingQuery{
		WithOwner: true,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortDesc:  query.SortDesc,
	}
	if query.Status != "" {
		status, err := entities.ParseListingStatus(query.Status)
		if err != nil {
			return nil, err
		}
		repoQuery.Status = &status
	}

	listings, err := s.listingRepo.List(repoQuery)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return mapper.NewListingResultsFromEntities(listings), nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*common.ListingResult, error) {
	listing, err := s.listingRepo.FindById(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil {
		return nil, apperr.NotFound("listing not found")
	}
	return mapper.NewListingResultFromEntity(listing), nil
}

func (s *ListingService) Update(ctx context.Context, id uuid.UUID, cmd command.UpdateListingCommand) (*command.UpdateListingCommandResult, error) {
	listing, err := s.listingRepo.FindById(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if listing == nil {
		return nil, apperr.NotFound("listing not found")
	}

	if cmd.Title != nil {
		listing.Title = *cmd.Title
	}
	if cmd.Description != nil {
		listing.Description = *cmd.Description
	}
	if cmd.Price != nil {
		listing.Price = *cmd.Price
	}
	if cmd.Beds != nil {
		listing.Beds = *cmd.Beds
	}
	if cmd.Baths != nil {
		listing.Baths = *cmd.Baths
	}
	if cmd.Sqft != nil {
		listing.Sqft = cmd.Sqft
	}
	if cmd.Address != nil {
		listing.Address = *cmd.Address
	}
	if cmd.Status != nil {
		status, err := entities.ParseListingStatus(*cmd.Status)
		if err != nil {
			return nil, err
		}
		listing.Status = status
	}
	if cmd.Published != nil {
		listing.Published = *cmd.Published
	}
	if cmd.Featured != nil {
		listing.Featured = *cmd.Featured
	}
	if cmd.Images != nil {
		listing.Images = *cmd.Images
	}

	validated, err := entities.NewValidatedListing(listing)
	if err != nil {
		return nil, err
	}

	updated, err := s.listingRepo.Update(validated)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.redisService.InvalidateListings(ctx)

	return &command.UpdateListingCommandResult{
		Result: mapper.NewListingResultFromEntity(updated),
	}, nil
}

func (s *ListingService) Delete(ctx context.Context, id uuid.UUID) error {
	listing, err := s.listingRepo.FindById(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if listing == nil {
		return apperr.NotFound("listing not found")
	}

	if err := s.listingRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}

	s.redisService.InvalidateListings(ctx)
	return nil
}
