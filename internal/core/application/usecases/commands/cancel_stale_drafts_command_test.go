package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleDraftsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelStaleDraftsCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.TTL())
}

func TestNewCancelStaleDraftsCommand_NonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Minute} {
		_, err := commands.NewCancelStaleDraftsCommand(ttl)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestCancelStaleDraftsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CancelStaleDraftsCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelStaleDraftsCommandIsNotConstructed)
}
