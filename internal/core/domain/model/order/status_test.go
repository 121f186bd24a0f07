package order_test

import (
	"testing"

	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("all known statuses are valid", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown is invalid", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		err := order.Status(7).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Unknown, "Unknown"},
		{order.Registered, "Registered"},
		{order.ReceivedAtWarehouse, "ReceivedAtWarehouse"},
		{order.HandedToCourier, "HandedToCourier"},
		{order.DeliveredToPostautomat, "DeliveredToPostautomat"},
		{order.DeliveredToRecipient, "DeliveredToRecipient"},
		{order.Cancelled, "Cancelled"},
		{order.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatus_Numbering(t *testing.T) {
	// Wire contract: statuses are 1..6 in this exact order.
	assert.Equal(t, 1, int(order.Registered))
	assert.Equal(t, 2, int(order.ReceivedAtWarehouse))
	assert.Equal(t, 3, int(order.HandedToCourier))
	assert.Equal(t, 4, int(order.DeliveredToPostautomat))
	assert.Equal(t, 5, int(order.DeliveredToRecipient))
	assert.Equal(t, 6, int(order.Cancelled))
}

func TestAllStatuses(t *testing.T) {
	statuses := order.AllStatuses()

	require.Len(t, statuses, 6)
	for i, s := range statuses {
		assert.Equal(t, i+1, int(s))
	}
}
