package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedClaimQuery(t *testing.T) {
	query, args, err := seedClaimQuery("demo").Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `INSERT INTO "seed_claim"`)
	assert.Contains(t, query, `ON CONFLICT ("name") DO NOTHING`)
	assert.Equal(t, []any{"demo"}, args)
}
