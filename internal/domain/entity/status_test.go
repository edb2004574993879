package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want entity.Status
	}{
		{"1", entity.StatusOpen},
		{"5", entity.StatusPartialDelivery},
		{"8", entity.StatusDeleted},
		{"Open", entity.StatusOpen},
		{"partial delivery", entity.StatusPartialDelivery},
		{"IN PROCESS", entity.StatusInProcess},
		{"  Delivered  ", entity.StatusDelivered},
	}
	for _, tc := range cases {
		got, err := entity.ParseStatus(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseStatus_Invalido(t *testing.T) {
	for _, raw := range []string{"", "0", "9", "-1", "Archivada"} {
		_, err := entity.ParseStatus(raw)
		assert.Error(t, err, raw)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Partial Delivery", entity.StatusPartialDelivery.String())
	assert.Equal(t, "Status(42)", entity.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, entity.StatusCancelled.IsTerminal())
	assert.True(t, entity.StatusDeleted.IsTerminal())
	assert.False(t, entity.StatusDelivered.IsTerminal())
	assert.False(t, entity.StatusOpen.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	for s := entity.StatusOpen; s <= entity.StatusDeleted; s++ {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, entity.Status(0).IsValid())
	assert.False(t, entity.Status(9).IsValid())
}
