package repositories

import (
	"github.com/google/uuid"

	"realty-server/internal/domain/entities"
)

// ListingQuery narrows and orders List results.
type ListingQuery struct {
	PublishedOnly bool
	WithOwner     bool
	Status        *entities.ListingStatus
	Search        string // matched against title and address city
	City          string
	MinPrice      *float64
	MaxPrice      *float64
	Beds          *int
	Baths         *int
	SortBy        string // title | price | status | createdAt
	SortDesc      bool
}

type ListingRepository interface {
	Create(listing *entities.ValidatedListing) (*entities.Listing, error)
	FindById(id uuid.UUID) (*entities.Listing, error)
	List(query ListingQuery) ([]*entities.Listing, error)
	Update(listing *entities.ValidatedListing) (*entities.Listing, error)
	Delete(id uuid.UUID) error
	CountByOwner(ownerId uuid.UUID) (int64, error)
}
