package common

import (
	"time"

	"github.com/google/uuid"

	"realty-server/internal/domain/entities"
)

// OwnerRef is the owner projection embedded in admin listing reads.
type OwnerRef struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ListingResult carries the stored (uppercase) status form; callers must
// not assume case stability against what they wrote.
type ListingResult struct {
	Id          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Beds        int              `json:"beds"`
	Baths       int              `json:"baths"`
	Sqft        *int             `json:"sqft,omitempty"`
	Address     entities.Address `json:"address"`
	Status      string           `json:"status"`
	Published   bool             `json:"published"`
	Featured    bool             `json:"featured"`
	Images      []string         `json:"images"`
	OwnerId     uuid.UUID        `json:"ownerId"`
	Owner       *OwnerRef        `json:"owner,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
