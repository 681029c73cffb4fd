package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"realty-server/internal/apperr"
)

// ListingStatus is a flat enumeration; any authorized update may set any
// value, there is no transition graph.
type ListingStatus string

const (
	StatusActive   ListingStatus = "ACTIVE"
	StatusPending  ListingStatus = "PENDING"
	StatusSold     ListingStatus = "SOLD"
	StatusInactive ListingStatus = "INACTIVE"
)

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ParseListingStatus normalizes any case variant of the client-facing
// status strings to the stored uppercase form.
func ParseListingStatus(s string) (ListingStatus, error) {
	switch ListingStatus(normalizeEnum(s)) {
	case StatusActive:
		return StatusActive, nil
	case StatusPending:
		return StatusPending, nil
	case StatusSold:
		return StatusSold, nil
	case StatusInactive:
		return StatusInactive, nil
	}
	return "", apperr.Validation("invalid listing status")
}

// Address is semi-structured; every sub-field is optional and stored as-is.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type Listing struct {
	Id          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	Price       float64
	Beds        int
	Baths       int
	Sqft        *int
	Address     Address
	Status      ListingStatus
	Published   bool
	Featured    bool
	Images      []string
	OwnerId     uuid.UUID

	// Owner is populated on admin reads only.
	Owner *Account
}

func NewListing(title string, price float64, ownerId uuid.UUID) *Listing {
	return &Listing{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Title:     title,
		Price:     price,
		Status:    StatusActive,
		Images:    make([]string, 0),
		OwnerId:   ownerId,
	}
}

func (l *Listing) validate() error {
	if l.Title == "" {
		return apperr.Validation("title must not be empty")
	}
	if l.Price <= 0 {
		return apperr.Validation("price must be a positive number")
	}
	if l.Beds < 0 || l.Baths < 0 {
		return apperr.Validation("beds and baths must not be negative")
	}
	if _, err := ParseListingStatus(string(l.Status)); err != nil {
		return err
	}
	if l.OwnerId == uuid.Nil {
		return apperr.Validation("listing must have an owner")
	}
	return nil
}

type ValidatedListing struct {
	*Listing
}

func NewValidatedListing(listing *Listing) (*ValidatedListing, error) {
	if err := listing.validate(); err != nil {
		return nil, err
	}
	return &ValidatedListing{Listing: listing}, nil
}

func (vl *ValidatedListing) GetListing() *Listing {
	return vl.Listing
}
