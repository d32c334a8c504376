package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
