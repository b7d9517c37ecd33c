package account

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/bank-demo/internal/storage/sqlconfig"
)

func TestSelectAccounts_ByID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	query, args, err := selectAccounts(byID(id)).Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `"id", "solde", "date", "type"`)
	assert.Contains(t, query, `FROM "compte"`)
	assert.Contains(t, query, `"id" = $1`)
	assert.Equal(t, []any{id}, args)
}

func TestSelectAccounts_ByTypeOldestFirst(t *testing.T) {
	mods := append(oldestFirst(), byType(sqlconfig.AccountTypeSavings))

	query, args, err := selectAccounts(mods...).Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `"type" = $1`)
	assert.Contains(t, query, `ORDER BY "date" ASC, "id" ASC`)
	assert.Equal(t, []any{sqlconfig.AccountTypeSavings}, args)
}

func TestSumBalancesQuery(t *testing.T) {
	query, args, err := sumBalancesQuery().Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `COALESCE(SUM("solde"), 0)`)
	assert.Contains(t, query, `FROM "compte"`)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
