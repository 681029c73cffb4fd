package entities

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"realty-server/internal/apperr"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAgent      Role = "AGENT"
	RoleModerator  Role = "MODERATOR"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(normalizeEnum(s)) {
	case RoleUser:
		return RoleUser, nil
	case RoleAgent:
		return RoleAgent, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	}
	return "", apperr.Validation("invalid role")
}

// IsPrivileged is the single predicate deciding admin-surface access.
// Every gate and handler guard goes through it.
func (r Role) IsPrivileged() bool {
	return r == RoleModerator || r == RoleSuperAdmin
}

type Account struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Name      string
	Role      Role
}

func NewAccount(email, password, name string, role Role) *Account {
	return &Account{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      role,
	}
}

func (a *Account) validate() error {
	if a.Email == "" {
		return apperr.Validation("email must not be empty")
	}
	if a.Password == "" {
		return apperr.Validation("password must not be empty")
	}
	if a.Name == "" {
		return apperr.Validation("name must not be empty")
	}
	if _, err := ParseRole(string(a.Role)); err != nil {
		return err
	}
	return nil
}

func (a *Account) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares against the stored bcrypt hash.
func (a *Account) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
}

// ValidatedAccount can only be constructed from an Account that passed
// validation; repositories accept nothing else for writes.
type ValidatedAccount struct {
	*Account
}

func NewValidatedAccount(account *Account) (*ValidatedAccount, error) {
	if err := account.validate(); err != nil {
		return nil, err
	}
	return &ValidatedAccount{Account: account}, nil
}

func (va *ValidatedAccount) GetAccount() *Account {
	return va.Account
}
