package command

import "realty-server/internal/application/common"

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCommandResult struct {
	Token   string                `json:"token"`
	Account *common.AccountResult `json:"account"`
}
