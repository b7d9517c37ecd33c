package account

import (
	"time"

	"github.com/carson-networks/bank-demo/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID       string `json:"id" doc:"Account UUID"`
	Balance  string `json:"balance" doc:"Decimal balance"`
	OpenedAt string `json:"openedAt" doc:"RFC3339 opening date"`
	Type     string `json:"type" enum:"COURANT,EPARGNE" doc:"Account type: COURANT=checking, EPARGNE=savings"`
}

func toResponse(acc service.Account) Account {
	return Account{
		ID:       acc.ID.String(),
		Balance:  acc.Balance.String(),
		OpenedAt: acc.OpenedAt.Format(time.RFC3339),
		Type:     acc.Type.String(),
	}
}

func toResponses(accounts []service.Account) []Account {
	resp := make([]Account, len(accounts))
	for i, acc := range accounts {
		resp[i] = toResponse(acc)
	}
	return resp
}
