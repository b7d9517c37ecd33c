package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/service"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Balance  string `json:"balance" required:"true" doc:"Decimal balance (e.g. '0' or '1234.56')"`
	OpenedAt string `json:"openedAt,omitempty" format:"date-time" doc:"RFC3339 opening date, defaults to now"`
	Type     string `json:"type" required:"true" enum:"COURANT,EPARGNE" doc:"Account type: COURANT=checking, EPARGNE=savings"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, account service.Account) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given balance, opening date and type.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.Account, error) {
	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	accountType, err := sqlconfig.ParseAccountType(input.Body.Type)
	if err != nil {
		return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	var openedAt time.Time
	if input.Body.OpenedAt != "" {
		openedAt, err = time.Parse(time.RFC3339, input.Body.OpenedAt)
		if err != nil {
			return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid openedAt", err)
		}
	}

	return service.Account{
		Balance:  balance,
		OpenedAt: openedAt,
		Type:     accountType,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	acc, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, acc)
	stopTimer()
	if err != nil {
		return nil, httperror.FromService(err, "failed to create account")
	}

	logData.AddData("accountID", created.ID.String())

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   toResponse(*created),
	}, nil
}
