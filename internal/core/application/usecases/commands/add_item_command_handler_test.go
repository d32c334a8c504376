package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), mustItemRequest(t, "SKU-2", 1, "5.30"))

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

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, aggregate.Items(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddItemCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddItemCommand(id, mustItemRequest(t, "SKU-2", 1, "5.30"))

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

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddItemCommandHandler_Handle_OrderNotDraft(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), mustItemRequest(t, "SKU-2", 1, "5.30"))

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

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Len(t, aggregate.Items(), 1)
}

func TestAddItemCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), mustItemRequest(t, "SKU-2", 1, "5.30"))

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

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
}

func TestAddItemCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t)
	cmd, _ := commands.NewAddItemCommand(aggregate.ID(), mustItemRequest(t, "SKU-2", 1, "5.30"))

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

	h := commands.NewAddItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
