package common

import (
	"time"

	"github.com/google/uuid"
)

// AccountResult is the wire shape of an account. The password hash never
// leaves the service layer.
type AccountResult struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
