package aggregate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bank-demo/internal/handlers/v1/httperror"
	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/service"
	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

type aggregator interface {
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	SumTransactionsByType(ctx context.Context, transactionType service.TransactionType) (decimal.Decimal, error)
}

type TotalBalanceBody struct {
	Total string `json:"total" doc:"Decimal sum of every account balance"`
}

type TotalBalanceOutput struct {
	Body TotalBalanceBody
}

type SumTransactionsInput struct {
	Type string `query:"type" required:"true" enum:"DEPOT,RETRAIT" doc:"Transaction type to sum"`
}

type SumTransactionsBody struct {
	Type  string `json:"type" doc:"Transaction type that was summed"`
	Total string `json:"total" doc:"Decimal sum of amounts"`
}

type SumTransactionsOutput struct {
	Body SumTransactionsBody
}

// Handler serves the aggregate queries.
type Handler struct {
	AggregateService aggregator
}

func NewHandler(svc aggregator) *Handler {
	return &Handler{AggregateService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "total-balance",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/total-balance",
		Summary:     "Total balance",
		Description: "Returns the sum of the balances of every account.",
		Tags:        []string{"Aggregates"},
	}, h.totalBalance)

	huma.Register(api, huma.Operation{
		OperationID: "sum-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/sum",
		Summary:     "Sum transactions by type",
		Description: "Returns the sum of the amounts of every transaction of the given type.",
		Tags:        []string{"Aggregates"},
	}, h.sumTransactions)
}

func (h *Handler) totalBalance(ctx context.Context, _ *struct{}) (*TotalBalanceOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("totalBalanceMs")
	total, err := h.AggregateService.TotalBalance(ctx)
	stopTimer()
	if err != nil {
		return nil, httperror.FromService(err, "failed to sum balances")
	}

	return &TotalBalanceOutput{Body: TotalBalanceBody{Total: total.String()}}, nil
}

func (h *Handler) sumTransactions(ctx context.Context, input *SumTransactionsInput) (*SumTransactionsOutput, error) {
	transactionType, err := sqlconfig.ParseTransactionType(input.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("sumTransactionsMs")
	total, err := h.AggregateService.SumTransactionsByType(ctx, transactionType)
	stopTimer()
	if err != nil {
		return nil, httperror.FromService(err, "failed to sum transactions")
	}

	return &SumTransactionsOutput{Body: SumTransactionsBody{
		Type:  transactionType.String(),
		Total: total.String(),
	}}, nil
}
