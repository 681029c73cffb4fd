package mapper

import (
	"realty-server/internal/application/common"
	"realty-server/internal/domain/entities"
)

func NewAccountResultFromEntity(account *entities.Account) *common.AccountResult {
	if account == nil {
		return nil
	}
	return &common.AccountResult{
		Id:        account.Id,
		Email:     account.Email,
		Name:      account.Name,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func NewListingResultFromEntity(listing *entities.Listing) *common.ListingResult {
	if listing == nil {
		return nil
	}
	result := &common.ListingResult{
		Id:          listing.Id,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Beds:        listing.Beds,
		Baths:       listing.Baths,
		Sqft:        listing.Sqft,
		Address:     listing.Address,
		Status:      string(listing.Status),
		Published:   listing.Published,
		Featured:    listing.Featured,
		Images:      listing.Images,
		OwnerId:     listing.OwnerId,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
	if listing.Owner != nil {
		result.Owner = &common.OwnerRef{
			Id:    listing.Owner.Id,
			Name:  listing.Owner.Name,
			Email: listing.Owner.Email,
		}
	}
	return result
}

func NewListingResultsFromEntities(listings []*entities.Listing) []*common.ListingResult {
	results := make([]*common.ListingResult, 0, len(listings))
	for _, listing := range listings {
		results = append(results, NewListingResultFromEntity(listing))
	}
	return results
}

func NewAccountResultsFromEntities(accounts []*entities.Account) []*common.AccountResult {
	results := make([]*common.AccountResult, 0, len(accounts))
	for _, account := range accounts {
		results = append(results, NewAccountResultFromEntity(account))
	}
	return results
}
