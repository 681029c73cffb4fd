package services

import (
	"context"

	"realty-server/internal/apperr"
	"realty-server/internal/application/command"
	"realty-server/internal/application/interfaces"
	"realty-server/internal/application/mapper"
	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
	"realty-server/internal/infrastructure"
)

type AuthService struct {
	accountRepo repositories.AccountRepository
	jwtService  *infrastructure.JWTService
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	jwtService *infrastructure.JWTService,
) interfaces.AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// errInvalidCredentials is shared by every login failure path so a caller
// cannot tell an absent account, a wrong password and an unprivileged role
// apart.
func errInvalidCredentials() error {
	return apperr.Unauthenticated("invalid credentials")
}

func (s *AuthService) Login(ctx context.Context, cmd command.LoginCommand) (*command.LoginCommandResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errInvalidCredentials()
	}

	account, err := s.accountRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, errInvalidCredentials()
	}

	if !account.Role.IsPrivileged() {
		return nil, errInvalidCredentials()
	}

	if err := account.CheckPassword(cmd.Password); err != nil {
		return nil, errInvalidCredentials()
	}

	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &command.LoginCommandResult{
		Token:   token,
		Account: mapper.NewAccountResultFromEntity(account),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, cmd command.CreateAccountCommand) (*command.CreateAccountCommandResult, error) {
	existing, err := s.accountRepo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("email already exists")
	}

	// Public sign-up always produces an ordinary user, whatever the
	// payload claims.
	newAccount := entities.NewAccount(cmd.Email, cmd.Password, cmd.Name, entities.RoleUser)
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

	return &command.CreateAccountCommandResult{
		Result: mapper.NewAccountResultFromEntity(created),
	}, nil
}
