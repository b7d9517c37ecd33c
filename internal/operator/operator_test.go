package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bank-demo/internal/storage"
)

type mockWriteStarter struct {
	mock.Mock
}

func (m *mockWriteStarter) Write(ctx context.Context) (*storage.Writer, error) {
	args := m.Called(ctx)
	writer, _ := args.Get(0).(*storage.Writer)
	return writer, args.Error(1)
}

type mockAction struct {
	mock.Mock
}

func (m *mockAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return m.Called(ctx, writer).Error(0)
}

func TestProcess_WriteError(t *testing.T) {
	starter := new(mockWriteStarter)
	starter.On("Write", mock.Anything).Return(nil, storage.ErrStoreUnavailable)
	action := new(mockAction)

	d := NewOperatorDelegator(starter, 2)
	d.Start()
	defer d.Stop()

	err := d.Process(context.Background(), action)

	assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
	action.AssertNotCalled(t, "Perform", mock.Anything, mock.Anything)
	starter.AssertExpectations(t)
}

func TestProcess_CanceledContext(t *testing.T) {
	starter := new(mockWriteStarter)
	action := new(mockAction)

	// No workers are started, so the item can only be abandoned through ctx.
	d := NewOperatorDelegator(starter, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, action)

	assert.True(t, errors.Is(err, context.Canceled))
	starter.AssertNotCalled(t, "Write", mock.Anything)
}

func TestProcessItem_SkipsCanceledItems(t *testing.T) {
	starter := new(mockWriteStarter)
	op := NewOperator(starter, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	respCh := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{ctx: ctx, action: new(mockAction), response: respCh})

	resp := <-respCh
	assert.ErrorIs(t, resp.err, context.Canceled)
	starter.AssertNotCalled(t, "Write", mock.Anything)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteStarter), 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), new(mockAction))
	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_MinimumOneWorker(t *testing.T) {
	d := NewOperatorDelegator(new(mockWriteStarter), 0)
	assert.Equal(t, 1, d.numWorkers)
}
