package command

import (
	"realty-server/internal/application/common"
	"realty-server/internal/domain/entities"
)

type CreateListingCommand struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Beds        int              `json:"beds"`
	Baths       int              `json:"baths"`
	Sqft        *int             `json:"sqft"`
	Address     entities.Address `json:"address"`
	Status      string           `json:"status"`
	Published   bool             `json:"published"`
	Featured    bool             `json:"featured"`
	Images      []string         `json:"images"`
}

type CreateListingCommandResult struct {
	Result *common.ListingResult `json:"result"`
}

// UpdateListingCommand is a partial update; nil fields are left unchanged.
type UpdateListingCommand struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Beds        *int              `json:"beds"`
	Baths       *int              `json:"baths"`
	Sqft        *int              `json:"sqft"`
	Address     *entities.Address `json:"address"`
	Status      *string           `json:"status"`
	Published   *bool             `json:"published"`
	Featured    *bool             `json:"featured"`
	Images      *[]string         `json:"images"`
}

type UpdateListingCommandResult struct {
	Result *common.ListingResult `json:"result"`
}
