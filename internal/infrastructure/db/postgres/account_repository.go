package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repositories.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(account *entities.ValidatedAccount) (*entities.Account, error) {
	accountEntity := account.GetAccount()

	accountModel := AccountModel{
		Id:        accountEntity.Id,
		CreatedAt: accountEntity.CreatedAt,
		UpdatedAt: accountEntity.UpdatedAt,
		Email:     accountEntity.Email,
		Password:  accountEntity.Password,
		Name:      accountEntity.Name,
		Role:      string(accountEntity.Role),
	}

	if err := r.db.Create(&accountModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(accountEntity.Id)
}

func (r *AccountRepository) FindById(id uuid.UUID) (*entities.Account, error) {
	var accountModel AccountModel
	if err := r.db.Where("id = ?", id).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&accountModel), nil
}

func (r *AccountRepository) FindByEmail(email string) (*entities.Account, error) {
	var accountModel AccountModel
	if err := r.db.Where("email = ?", email).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&accountModel), nil
}

func (r *AccountRepository) List(query repositories.AccountQuery) ([]*entities.Account, error) {
	tx := r.db.Model(&AccountModel{})

	if query.Role != nil {
		tx = tx.Where("role = ?", string(*query.Role))
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	tx = applyAccountOrder(tx, query)

	var accountModels []AccountModel
	if err := tx.Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]*entities.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, r.mapToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// applyAccountOrder keeps ordering stable for a fixed sort key: ties are
// broken by creation order, then id.
func applyAccountOrder(tx *gorm.DB, query repositories.AccountQuery) *gorm.DB {
	column := ""
	switch query.SortBy {
	case "name":
		column = "name"
	case "email":
		column = "email"
	case "role":
		column = "role"
	case "createdAt":
		column = "created_at"
	}

	if column != "" {
		dir := "ASC"
		if query.SortDesc {
			dir = "DESC"
		}
		tx = tx.Order(column + " " + dir)
	}
	return tx.Order("created_at ASC").Order("id ASC")
}

func (r *AccountRepository) Update(account *entities.ValidatedAccount) (*entities.Account, error) {
	accountEntity := account.GetAccount()

	accountModel := AccountModel{
		Id:        accountEntity.Id,
		CreatedAt: accountEntity.CreatedAt,
		UpdatedAt: accountEntity.UpdatedAt,
		Email:     accountEntity.Email,
		Password:  accountEntity.Password,
		Name:      accountEntity.Name,
		Role:      string(accountEntity.Role),
	}

	if err := r.db.Save(&accountModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(accountEntity.Id)
}

func (r *AccountRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&AccountModel{}, "id = ?", id).Error
}

func (r *AccountRepository) mapToEntity(accountModel *AccountModel) *entities.Account {
	return &entities.Account{
		Id:        accountModel.Id,
		CreatedAt: accountModel.CreatedAt,
		UpdatedAt: accountModel.UpdatedAt,
		Email:     accountModel.Email,
		Password:  accountModel.Password,
		Name:      accountModel.Name,
		Role:      entities.Role(accountModel.Role),
	}
}
