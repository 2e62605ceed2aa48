package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableNumber(t *testing.T) {
	const maxTables = 50

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "valid table", value: 7, wantErr: false},
		{name: "valid at min bound", value: kernel.TableNumberMin, wantErr: false},
		{name: "valid at max bound", value: maxTables, wantErr: false},
		{name: "below min bound", value: kernel.TableNumberMin - 1, wantErr: true},
		{name: "above max bound", value: maxTables + 1, wantErr: true},
		{name: "far out of range", value: 999, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := kernel.NewTableNumber(tt.value, maxTables)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, table.Value())
			assert.NoError(t, table.Validate())
		})
	}

	t.Run("rejects invalid table count", func(t *testing.T) {
		_, err := kernel.NewTableNumber(1, 0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTableNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var table kernel.TableNumber
		require.ErrorIs(t, table.Validate(), kernel.ErrTableNumberIsNotConstructed)
	})
}

func TestTableNumber_IsEqual(t *testing.T) {
	a, _ := kernel.NewTableNumber(3, 10)
	b, _ := kernel.NewTableNumber(3, 10)
	c, _ := kernel.NewTableNumber(4, 10)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.Equal(t, "3", a.String())
}
