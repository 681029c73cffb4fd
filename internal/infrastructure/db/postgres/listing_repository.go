package postgres

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) repositories.ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(listing *entities.ValidatedListing) (*entities.Listing, error) {
	listingModel, err := r.mapToModel(listing.GetListing())
	if err != nil {
		return nil, err
	}

	if err := r.db.Create(listingModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(listingModel.Id)
}

func (r *ListingRepository) FindById(id uuid.UUID) (*entities.Listing, error) {
	var listingModel ListingModel
	if err := r.db.Preload("Owner").Where("id = ?", id).First(&listingModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&listingModel)
}

func (r *ListingRepository) List(query repositories.ListingQuery) ([]*entities.Listing, error) {
	tx := r.db.Model(&ListingModel{})

	if query.WithOwner {
		tx = tx.Preload("Owner")
	}
	if query.PublishedOnly {
		tx = tx.Where("published = ?", true)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", string(*query.Status))
	}
	if query.City != "" {
		tx = tx.Where(datatypes.JSONQuery("address").Equals(query.City, "city"))
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where(r.db.Where("title LIKE ?", pattern).
			Or(datatypes.JSONQuery("address").Likes(pattern, "city")))
	}
	if query.MinPrice != nil {
		tx = tx.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price <= ?", *query.MaxPrice)
	}
	if query.Beds != nil {
		tx = tx.Where("beds = ?", *query.Beds)
	}
	if query.Baths != nil {
		tx = tx.Where("baths = ?", *query.Baths)
	}

	tx = applyListingOrder(tx, query)

	var listingModels []ListingModel
	if err := tx.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*entities.Listing, 0, len(listingModels))
	for i := range listingModels {
		listing, err := r.mapToEntity(&listingModels[i])
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func applyListingOrder(tx *gorm.DB, query repositories.ListingQuery) *gorm.DB {
	column := ""
	switch query.SortBy {
	case "title":
		column = "title"
	case "price":
		column = "price"
	case "status":
		column = "status"
	case "createdAt":
		column = "created_at"
	}

	if column != "" {
		dir := "ASC"
		if query.SortDesc {
			dir = "DESC"
		}
		tx = tx.Order(column + " " + dir)
	}
	// Unsorted reads list newest first; explicit sorts fall back to it on ties.
	return tx.Order("created_at DESC").Order("id DESC")
}

func (r *ListingRepository) Update(listing *entities.ValidatedListing) (*entities.Listing, error) {
	listingModel, err := r.mapToModel(listing.GetListing())
	if err != nil {
		return nil, err
	}

	if err := r.db.Save(listingModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(listingModel.Id)
}

func (r *ListingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&ListingModel{}, "id = ?", id).Error
}

func (r *ListingRepository) CountByOwner(ownerId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&ListingModel{}).Where("owner_id = ?", ownerId).Count(&count).Error
	return count, err
}

func (r *ListingRepository) mapToModel(listing *entities.Listing) (*ListingModel, error) {
	address, err := json.Marshal(listing.Address)
	if err != nil {
		return nil, err
	}
	images, err := json.Marshal(listing.Images)
	if err != nil {
		return nil, err
	}

	return &ListingModel{
		Id:          listing.Id,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Beds:        listing.Beds,
		Baths:       listing.Baths,
		Sqft:        listing.Sqft,
		Address:     datatypes.JSON(address),
		Status:      string(listing.Status),
		Published:   listing.Published,
		Featured:    listing.Featured,
		Images:      datatypes.JSON(images),
		OwnerId:     listing.OwnerId,
	}, nil
}

func (r *ListingRepository) mapToEntity(listingModel *ListingModel) (*entities.Listing, error) {
	var address entities.Address
	if len(listingModel.Address) > 0 {
		if err := json.Unmarshal(listingModel.Address, &address); err != nil {
			return nil, err
		}
	}

	images := make([]string, 0)
	if len(listingModel.Images) > 0 {
		if err := json.Unmarshal(listingModel.Images, &images); err != nil {
			return nil, err
		}
	}

	listing := &entities.Listing{
		Id:          listingModel.Id,
		CreatedAt:   listingModel.CreatedAt,
		UpdatedAt:   listingModel.UpdatedAt,
		Title:       listingModel.Title,
		Description: listingModel.Description,
		Price:       listingModel.Price,
		Beds:        listingModel.Beds,
		Baths:       listingModel.Baths,
		Sqft:        listingModel.Sqft,
		Address:     address,
		Status:      entities.ListingStatus(listingModel.Status),
		Published:   listingModel.Published,
		Featured:    listingModel.Featured,
		Images:      images,
		OwnerId:     listingModel.OwnerId,
	}

	if listingModel.Owner != nil {
		listing.Owner = &entities.Account{
			Id:        listingModel.Owner.Id,
			CreatedAt: listingModel.Owner.CreatedAt,
			UpdatedAt: listingModel.Owner.UpdatedAt,
			Email:     listingModel.Owner.Email,
			Name:      listingModel.Owner.Name,
			Role:      entities.Role(listingModel.Owner.Role),
		}
	}

	return listing, nil
}
