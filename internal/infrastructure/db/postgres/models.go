package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AccountModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Name      string `gorm:"not null"`
	Role      string `gorm:"not null;default:'USER'"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

type ListingModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string  `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Beds        int
	Baths       int
	Sqft        *int
	Address     datatypes.JSON
	Status      string `gorm:"not null;default:'ACTIVE'"`
	Published   bool   `gorm:"default:false"`
	Featured    bool   `gorm:"default:false"`
	Images      datatypes.JSON
	OwnerId     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Owner       *AccountModel `gorm:"foreignKey:OwnerId"`
}

func (ListingModel) TableName() string {
	return "listings"
}
