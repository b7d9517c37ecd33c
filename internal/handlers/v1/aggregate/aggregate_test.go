package aggregate

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-demo/internal/service"
	"github.com/carson-networks/bank-demo/internal/storage"
)

type mockAggregator struct {
	mock.Mock
}

func (m *mockAggregator) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAggregator) SumTransactionsByType(ctx context.Context, transactionType service.TransactionType) (decimal.Decimal, error) {
	args := m.Called(ctx, transactionType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func newTestAPI(t *testing.T, svc aggregator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_TotalBalance(t *testing.T) {
	svc := new(mockAggregator)
	svc.On("TotalBalance", mock.Anything).Return(decimal.RequireFromString("6450.5"), nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts/total-balance")

	require.Equal(t, http.StatusOK, resp.Code)
	var body TotalBalanceBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "6450.5", body.Total)
}

func TestHTTP_TotalBalance_EmptyStore(t *testing.T) {
	svc := new(mockAggregator)
	svc.On("TotalBalance", mock.Anything).Return(decimal.Zero, nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts/total-balance")

	require.Equal(t, http.StatusOK, resp.Code)
	var body TotalBalanceBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Total)
}

func TestHTTP_TotalBalance_StoreUnavailable(t *testing.T) {
	svc := new(mockAggregator)
	svc.On("TotalBalance", mock.Anything).Return(decimal.Zero, storage.ErrStoreUnavailable)

	resp := newTestAPI(t, svc).Get("/v1/accounts/total-balance")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestHTTP_SumTransactions(t *testing.T) {
	svc := new(mockAggregator)
	svc.On("SumTransactionsByType", mock.Anything, service.TransactionTypeDeposit).
		Return(decimal.RequireFromString("600"), nil)

	resp := newTestAPI(t, svc).Get("/v1/transactions/sum?type=DEPOT")

	require.Equal(t, http.StatusOK, resp.Code)
	var body SumTransactionsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "DEPOT", body.Type)
	assert.Equal(t, "600", body.Total)
}

func TestHTTP_SumTransactions_MissingType(t *testing.T) {
	svc := new(mockAggregator)

	resp := newTestAPI(t, svc).Get("/v1/transactions/sum")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "SumTransactionsByType", mock.Anything, mock.Anything)
}

func TestHTTP_SumTransactions_UnknownType(t *testing.T) {
	svc := new(mockAggregator)

	resp := newTestAPI(t, svc).Get("/v1/transactions/sum?type=VIREMENT")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "SumTransactionsByType", mock.Anything, mock.Anything)
}
