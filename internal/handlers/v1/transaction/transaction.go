package transaction

import (
	"time"

	"github.com/carson-networks/bank-demo/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	AccountID  string `json:"accountID" doc:"Account UUID"`
	Amount     string `json:"amount" doc:"Decimal amount"`
	OccurredAt string `json:"occurredAt" doc:"RFC3339 transaction date"`
	Type       string `json:"type" enum:"DEPOT,RETRAIT" doc:"Transaction type: DEPOT=deposit, RETRAIT=withdrawal"`
}

func toResponse(tx service.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID.String(),
		AccountID:  tx.AccountID.String(),
		Amount:     tx.Amount.String(),
		OccurredAt: tx.OccurredAt.Format(time.RFC3339),
		Type:       tx.Type.String(),
	}
}
