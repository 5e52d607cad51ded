package commands_test

import (
	"context"
	"fmt"
	"testing"

	"freightmatch/internal/core/application/usecases/commands"
	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	t.Run("should create command with proof photo", func(t *testing.T) {
		id := kernel.NewUUID()
		proof := "file:///photos/proof-3.jpg"

		cmd, err := commands.NewCompleteOrderCommand(id, &proof)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		require.NotNil(t, cmd.ProofPhoto())
		assert.Equal(t, proof, *cmd.ProofPhoto())
	})

	t.Run("should create command without proof photo", func(t *testing.T) {
		cmd, err := commands.NewCompleteOrderCommand(kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.ProofPhoto())
	})

	t.Run("should reject zero value order id", func(t *testing.T) {
		var id kernel.UUID

		_, err := commands.NewCompleteOrderCommand(id, nil)

		require.Error(t, err)
	})

	t.Run("should reject command bypassing the constructor", func(t *testing.T) {
		cmd := commands.CompleteOrderCommand{}

		require.Error(t, cmd.Validate())
	})
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	target := newStoredOrder(t)
	require.NoError(t, target.Accept())
	proof := "file:///photos/proof-3.jpg"

	cmd, err := commands.NewCompleteOrderCommand(target.ID(), &proof)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", mock.Anything, "Delivery completed",
			fmt.Sprintf("Order #%s was delivered. Check the proof of delivery.", target.ID())).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, target.Status())
	require.NotNil(t, target.ProofPhoto())
	assert.Equal(t, proof, *target.ProofPhoto())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_WithoutProofPhoto(t *testing.T) {
	ctx := context.Background()
	target := newStoredOrder(t)
	require.NoError(t, target.Accept())

	cmd, err := commands.NewCompleteOrderCommand(target.ID(), nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, target.Status())
	assert.Nil(t, target.ProofPhoto())
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, err := commands.NewCompleteOrderCommand(id, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	target := newStoredOrder(t) // still pending

	cmd, err := commands.NewCompleteOrderCommand(target.ID(), nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, target.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
