package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-demo/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/service"
)

type GetAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	logging.GetLogData(ctx).AddData("accountID", id.String())

	acc, err := h.AccountService.GetAccount(ctx, id)
	if err != nil {
		return nil, httperror.FromService(err, "failed to get account")
	}

	return &GetAccountOutput{Body: toResponse(*acc)}, nil
}
