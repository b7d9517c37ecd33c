package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-demo/internal/logging"
	"github.com/carson-networks/bank-demo/internal/operator/actions"
	"github.com/carson-networks/bank-demo/internal/storage/account"
)

func newSeedTestService(t *testing.T) (*SeedService, *mockProcessor, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := logging.SetupLogging()
	logger.Out = buf
	processor := new(mockProcessor)
	t.Cleanup(func() { processor.AssertExpectations(t) })
	return NewSeedService(processor, logger), processor, buf
}

func TestSeedDemoData_Seeded(t *testing.T) {
	svc, processor, buf := newSeedTestService(t)
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.SeedDemoData) bool {
		return a.Now != nil && a.Now().Equal(fixed)
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.SeedDemoData)
		action.Seeded = true
		action.Accounts = make([]*account.Account, 3)
	}).Return(nil)

	seeded, err := svc.SeedDemoData(context.Background())

	assert.NoError(t, err)
	assert.True(t, seeded)
	assert.Contains(t, buf.String(), `"seeded":true`)
	assert.Contains(t, buf.String(), `"accounts":3`)
}

func TestSeedDemoData_AlreadySeeded(t *testing.T) {
	svc, processor, _ := newSeedTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(nil)

	seeded, err := svc.SeedDemoData(context.Background())

	assert.NoError(t, err)
	assert.False(t, seeded)
}

func TestSeedDemoData_Error(t *testing.T) {
	svc, processor, buf := newSeedTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	seeded, err := svc.SeedDemoData(context.Background())

	assert.EqualError(t, err, "connection refused")
	assert.False(t, seeded)
	assert.Contains(t, buf.String(), "SeedService.SeedDemoData")
}
