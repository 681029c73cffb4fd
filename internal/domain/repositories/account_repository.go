package repositories

import (
	"github.com/google/uuid"

	"realty-server/internal/domain/entities"
)

// AccountQuery narrows and orders List results. Zero value returns every
// account ordered by creation time.
type AccountQuery struct {
	Role     *entities.Role
	Search   string // matched against name and email
	SortBy   string // name | email | role | createdAt
	SortDesc bool
}

type AccountRepository interface {
	Create(account *entities.ValidatedAccount) (*entities.Account, error)
	FindById(id uuid.UUID) (*entities.Account, error)
	FindByEmail(email string) (*entities.Account, error)
	List(query AccountQuery) ([]*entities.Account, error)
	Update(account *entities.ValidatedAccount) (*entities.Account, error)
	Delete(id uuid.UUID) error
}
