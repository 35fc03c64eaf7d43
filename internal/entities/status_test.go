package entities_test

import (
	"testing"

	"github.com/xwear/shop-backend/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Transition(t *testing.T) {
	testCases := []struct {
		name      string
		method    entities.DeliveryMethod
		from      entities.Status
		to        entities.Status
		wantEvent entities.EventType
		wantErr   error
	}{
		{
			name:      "processing to shipped for delivery",
			method:    entities.MethodDelivery,
			from:      entities.StatusProcessing,
			to:        entities.StatusShipped,
			wantEvent: entities.EventOrderShipped,
		},
		{
			name:      "processing to ready for pickup",
			method:    entities.MethodPickup,
			from:      entities.StatusProcessing,
			to:        entities.StatusReadyForPickup,
			wantEvent: entities.EventOrderReadyForPickup,
		},
		{
			name:    "shipped rejected on pickup order",
			method:  entities.MethodPickup,
			from:    entities.StatusProcessing,
			to:      entities.StatusShipped,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "ready for pickup rejected on delivery order",
			method:  entities.MethodDelivery,
			from:    entities.StatusProcessing,
			to:      entities.StatusReadyForPickup,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:   "shipped to completed emits nothing",
			method: entities.MethodDelivery,
			from:   entities.StatusShipped,
			to:     entities.StatusCompleted,
		},
		{
			name:    "processing straight to completed rejected",
			method:  entities.MethodDelivery,
			from:    entities.StatusProcessing,
			to:      entities.StatusCompleted,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:      "shipped to cancelled",
			method:    entities.MethodDelivery,
			from:      entities.StatusShipped,
			to:        entities.StatusCancelled,
			wantEvent: entities.EventOrderCancelled,
		},
		{
			name:    "completed is terminal",
			method:  entities.MethodDelivery,
			from:    entities.StatusCompleted,
			to:      entities.StatusCancelled,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "cancelled is terminal",
			method:  entities.MethodPickup,
			from:    entities.StatusCancelled,
			to:      entities.StatusProcessing,
			wantErr: entities.ErrIllegalTransition,
		},
		{
			name:    "unknown status",
			method:  entities.MethodPickup,
			from:    entities.StatusProcessing,
			to:      entities.Status("paid"),
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := entities.Order{ID: 1, UserID: 7, DeliveryMethod: tc.method, Status: tc.from}

			evt, err := order.Transition(tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, order.Status, "failed transition must not change status")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, order.Status)

			if tc.wantEvent == "" {
				assert.Nil(t, evt)
				return
			}
			require.NotNil(t, evt)
			assert.Equal(t, tc.wantEvent, evt.Type)
			assert.Equal(t, order.ID, evt.OrderID)
			assert.NotEmpty(t, evt.EventID)
		})
	}
}
