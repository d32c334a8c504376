package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionSuccess, result)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConfirmOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, commands.ActionUnknown, result)
}

func TestConfirmOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewConfirmOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionNotFound, result)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyConfirmed(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.ActionInvalidState, result)
	assert.Equal(t, order.Confirmed, aggregate.Status())
}

func TestConfirmOrderCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).
			Return(errs.NewConcurrencyConflictError("orderId", aggregate.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	assert.Equal(t, commands.ActionUnknown, result)
}

func TestConfirmOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewConfirmOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, commands.ActionUnknown, result)
}
