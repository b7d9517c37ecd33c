package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/service"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(_ context.Context) error {
	return f.err
}

func newTestRest(db pinger) *Rest {
	return &Rest{
		Logger: logging.SetupLogging(),
		Port:   "0",
		Service: &service.Service{
			Account:     &service.AccountService{},
			Transaction: &service.TransactionService{},
			Aggregate:   &service.AggregateService{},
		},
		DB: db,
	}
}

func TestHandler_Status(t *testing.T) {
	srv := httptest.NewServer(newTestRest(fakePinger{}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_StatusDatabaseDown(t *testing.T) {
	srv := httptest.NewServer(newTestRest(fakePinger{err: errors.New("down")}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandler_RegistersEveryOperation(t *testing.T) {
	srv := httptest.NewServer(newTestRest(fakePinger{}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc := string(raw)

	for _, path := range []string{
		"/v1/account",
		"/v1/account/{id}",
		"/v1/accounts",
		"/v1/account/{id}/transactions",
		"/v1/transaction",
		"/v1/transaction/{id}",
		"/v1/accounts/total-balance",
		"/v1/transactions/sum",
	} {
		assert.True(t, strings.Contains(doc, `"`+path+`"`), "missing %s", path)
	}
}

func TestHandler_ValidationRunsBeforeService(t *testing.T) {
	srv := httptest.NewServer(newTestRest(fakePinger{}).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/account", "application/json", strings.NewReader(`{"type":"COURANT"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
