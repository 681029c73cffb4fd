package command

import "realty-server/internal/application/common"

type CreateAccountCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type CreateAccountCommandResult struct {
	Result *common.AccountResult `json:"result"`
}

// UpdateAccountCommand is a partial update; nil fields are left unchanged.
type UpdateAccountCommand struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

type UpdateAccountCommandResult struct {
	Result *common.AccountResult `json:"result"`
}
