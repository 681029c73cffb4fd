package interfaces

import (
	"context"

	"github.com/google/uuid"

	"realty-server/internal/application/command"
	"realty-server/internal/application/common"
)

type AuthService interface {
	// Login verifies credentials and requires a privileged role. All
	// failure causes collapse to the same unauthenticated error.
	Login(ctx context.Context, cmd command.LoginCommand) (*command.LoginCommandResult, error)
	// Register creates an ordinary USER account from public sign-up.
	Register(ctx context.Context, cmd command.CreateAccountCommand) (*command.CreateAccountCommandResult, error)
}

type AccountListQuery struct {
	Role     string
	Search   string
	SortBy   string
	SortDesc bool
}

type AccountService interface {
	Create(ctx context.Context, cmd command.CreateAccountCommand) (*command.CreateAccountCommandResult, error)
	List(ctx context.Context, query AccountListQuery) ([]*common.AccountResult, error)
	Get(ctx context.Context, id uuid.UUID) (*common.AccountResult, error)
	// Update applies a partial field set. actorId is the authenticated
	// account; an actor can never change their own role.
	Update(ctx context.Context, actorId, id uuid.UUID, cmd command.UpdateAccountCommand) (*command.UpdateAccountCommandResult, error)
	// Delete rejects self-deletion and accounts that still own listings.
	Delete(ctx context.Context, actorId, id uuid.UUID) error
}

type ListingSearchQuery struct {
	City     string
	MinPrice *float64
	MaxPrice *float64
	Beds     *int
	Baths    *int
}

type AdminListingQuery struct {
	Status   string
	Search   string
	SortBy   string
	SortDesc bool
}

type ListingService interface {
	Create(ctx context.Context, ownerId uuid.UUID, cmd command.CreateListingCommand) (*command.CreateListingCommandResult, error)
	PublicList(ctx context.Context) ([]*common.ListingResult, error)
	Search(ctx context.Context, query ListingSearchQuery) ([]*common.ListingResult, error)
	// AdminList returns the full set including unpublished listings,
	// owner projection embedded.
	AdminList(ctx context.Context, query AdminListingQuery) ([]*common.ListingResult, error)
	Get(ctx context.Context, id uuid.UUID) (*common.ListingResult, error)
	Update(ctx context.Context, id uuid.UUID, cmd command.UpdateListingCommand) (*command.UpdateListingCommandResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
