package commands_test

import (
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/parcel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateParcelStatusCommand(t *testing.T) {
	t.Run("valid input constructs command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewUpdateParcelStatusCommand(id, parcel.Sent)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ParcelID().IsEqual(id))
		assert.Equal(t, parcel.Sent, cmd.NewStatus())
	})

	t.Run("invalid parcel id is rejected", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand(kernel.UUID{}, parcel.Sent)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand(kernel.NewUUID(), parcel.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range status is rejected", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand(kernel.NewUUID(), parcel.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateParcelStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateParcelStatusCommandIsNotConstructed)
	})
}
