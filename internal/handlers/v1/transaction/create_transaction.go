package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/service"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID  string `json:"accountID" required:"true" format:"uuid" doc:"Account UUID"`
	Amount     string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	OccurredAt string `json:"occurredAt,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Type       string `json:"type" required:"true" enum:"DEPOT,RETRAIT" doc:"Transaction type: DEPOT=deposit, RETRAIT=withdrawal"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction service.Transaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a deposit or withdrawal against an existing account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "amount must not be negative")
	}

	transactionType, err := sqlconfig.ParseTransactionType(input.Body.Type)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	var occurredAt time.Time
	if input.Body.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, input.Body.OccurredAt)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid occurredAt", err)
		}
	}

	return service.Transaction{
		AccountID:  accountID,
		Amount:     amount,
		OccurredAt: occurredAt,
		Type:       transactionType,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, tx)
	stopTimer()
	if err != nil {
		return nil, httperror.FromService(err, "failed to create transaction")
	}

	logData.AddData("transactionID", created.ID.String())

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   toResponse(*created),
	}, nil
}
