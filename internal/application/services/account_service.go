package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/common"
	"realty-server/internal/application/interfaces"
	"realty-server/internal/application/mapper"
	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
	"realty-server/internal/infrastructure"
)

type AccountService struct {
	accountRepo repositories.AccountRepository
	listingRepo repositories.ListingRepository
	mailService *infrastructure.MailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	listingRepo repositories.ListingRepository,
	mailService *infrastructure.MailService,
) interfaces.AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		mailService: mailService,
	}
}

func (s *AccountService) Create(ctx context.Context, cmd command.CreateAccountCommand) (*command.CreateAccountCommandResult, error) {
	existing, err := s.accountRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("email already exists")
	}

	role := entities.RoleUser
	if cmd.Role != "" {
		role, err = entities.ParseRole(cmd.Role)
		if err != nil {
			return nil, err
		}
	}

	newAccount := entities.NewAccount(cmd.Email, cmd.Password, cmd.Name, role)
	validated, err := entities.NewValidatedAccount(newAccount)
	if err != nil {
		return nil, err
	}

	if err := validated.GetAccount().HashPassword(); err != nil {
		return nil, apperr.Internal(err)
	}

	created, err := s.accountRepo.Create(validated)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if s.mailService != nil {
		if err := s.mailService.SendWelcome(created.Email, created.Name); err != nil {
			log.Printf("welcome mail for %s failed: %v", created.Email, err)
		}
	}

	return &command.CreateAccountCommandResult{
		Result: mapper.NewAccountResultFromEntity(created),
	}, nil
}

func (s *AccountService) List(ctx context.Context, query interfaces.AccountListQuery) ([]*common.AccountResult, error) {
	repoQuery := repositories.AccountQuery{
		Search:   query.Search,
		SortBy:   query.SortBy,
		SortDesc: query.SortDesc,
	}
	if query.Role != "" {
		role, err := entities.ParseRole(query.Role)
		if err != nil {
			return nil, err
		}
		repoQuery.Role = &role
	}

	accounts, err := s.accountRepo.List(repoQuery)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return mapper.NewAccountResultsFromEntities(accounts), nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*common.AccountResult, error) {
	account, err := s.accountRepo.FindById(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFound("account not found")
	}
	return mapper.NewAccountResultFromEntity(account), nil
}

func (s *AccountService) Update(ctx context.Context, actorId, id uuid.UUID, cmd command.UpdateAccountCommand) (*command.UpdateAccountCommandResult, error) {
	account, err := s.accountRepo.FindById(id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFound("account not found")
	}

	if cmd.Role != nil {
		role, err := entities.ParseRole(*cmd.Role)
		if err != nil {
			return nil, err
		}
		// An actor may not elevate or demote their own role.
		if actorId == id && role != account.Role {
			return nil, apperr.Forbidden("cannot change your own role")
		}
		account.Role = role
	}

	if cmd.Email != nil && *cmd.Email != account.Email {
		existing, err := s.accountRepo.FindByEmail(*cmd.Email)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if existing != nil {
			return nil, apperr.Validation("email already exists")
		}
		account.Email = *cmd.Email
	}
	if cmd.Name != nil {
		account.Name = *cmd.Name
	}

	validated, err := entities.NewValidatedAccount(account)
	if err != nil {
		return nil, err
	}

	if cmd.Password != nil && *cmd.Password != "" {
		validated.GetAccount().Password = *cmd.Password
		if err := validated.GetAccount().HashPassword(); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated, err := s.accountRepo.Update(validated)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &command.UpdateAccountCommandResult{
		Result: mapper.NewAccountResultFromEntity(updated),
	}, nil
}

func (s *AccountService) Delete(ctx context.Context, actorId, id uuid.UUID) error {
	if actorId == id {
		return apperr.Forbidden("cannot delete your own account")
	}

	account, err := s.accountRepo.FindById(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if account == nil {
		return apperr.NotFound("account not found")
	}

	owned, err := s.listingRepo.CountByOwner(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if owned > 0 {
		return apperr.Conflict("account still owns listings")
	}

	if err := s.accountRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
