package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"design_pending_to_approved", order.DesignPending, order.DesignApproved, true},
		{"design_pending_to_rejected", order.DesignPending, order.DesignRejected, true},
		{"design_rejected_to_pending_resubmit", order.DesignRejected, order.DesignPending, true},
		{"design_approved_to_awaiting_payment", order.DesignApproved, order.AwaitingPayment, true},
		{"awaiting_payment_to_confirmed", order.AwaitingPayment, order.Confirmed, true},
		{"confirmed_to_processing", order.Confirmed, order.Processing, true},
		{"confirmed_to_scheduled", order.Confirmed, order.Scheduled, true},
		{"processing_to_scheduled", order.Processing, order.Scheduled, true},
		{"scheduled_to_in_transit", order.Scheduled, order.InTransit, true},
		{"in_transit_to_delivered", order.InTransit, order.Delivered, true},
		{"delivered_to_refund_requested", order.Delivered, order.RefundRequested, true},
		{"cancel_requested_to_cancelled", order.CancelRequested, order.Cancelled, true},
		{"refund_requested_to_refunded", order.RefundRequested, order.Refunded, true},

		{"design_pending_to_confirmed_skips_gate", order.DesignPending, order.Confirmed, false},
		{"awaiting_payment_to_scheduled_skips_verification", order.AwaitingPayment, order.Scheduled, false},
		{"delivered_to_in_transit_regression", order.Delivered, order.InTransit, false},
		{"in_transit_to_scheduled_regression", order.InTransit, order.Scheduled, false},
		{"cancelled_is_terminal", order.Cancelled, order.AwaitingPayment, false},
		{"refunded_is_terminal", order.Refunded, order.Delivered, false},
		{"delivered_cannot_be_cancel_requested", order.Delivered, order.CancelRequested, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)

			if !tt.allowed {
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())

	assert.False(t, order.AwaitingPayment.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.False(t, order.CancelRequested.IsTerminal())
}

func TestStatus_RequiredRoleSatisfied(t *testing.T) {
	t.Run("cancellation_request_is_customer_only", func(t *testing.T) {
		assert.True(t, order.Processing.RequiredRoleSatisfied(order.CancelRequested, kernel.RoleCustomer))
		assert.False(t, order.Processing.RequiredRoleSatisfied(order.CancelRequested, kernel.RoleAdmin))
	})

	t.Run("refund_request_is_customer_only", func(t *testing.T) {
		assert.True(t, order.Delivered.RequiredRoleSatisfied(order.RefundRequested, kernel.RoleCustomer))
		assert.False(t, order.Delivered.RequiredRoleSatisfied(order.RefundRequested, kernel.RoleStaff))
	})

	t.Run("verification_and_scheduling_are_administrative", func(t *testing.T) {
		assert.True(t, order.AwaitingPayment.RequiredRoleSatisfied(order.Confirmed, kernel.RoleAdmin))
		assert.True(t, order.AwaitingPayment.RequiredRoleSatisfied(order.Confirmed, kernel.RoleStaff))
		assert.False(t, order.AwaitingPayment.RequiredRoleSatisfied(order.Confirmed, kernel.RoleCustomer))

		assert.True(t, order.Processing.RequiredRoleSatisfied(order.Scheduled, kernel.RoleAdmin))
		assert.False(t, order.Processing.RequiredRoleSatisfied(order.Scheduled, kernel.RoleCustomer))
	})
}

func TestStatus_StringRoundTrip(t *testing.T) {
	statuses := []order.Status{
		order.DesignPending, order.DesignApproved, order.DesignRejected,
		order.AwaitingPayment, order.Confirmed, order.Processing,
		order.Scheduled, order.InTransit, order.Delivered,
		order.CancelRequested, order.Cancelled, order.RefundRequested, order.Refunded,
	}

	for _, s := range statuses {
		parsed, err := order.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.StatusFromString("Bogus")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeliveryStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.DeliveryStatus
		to      order.DeliveryStatus
		allowed bool
	}{
		{"pending_to_scheduled", order.DeliveryPending, order.DeliveryScheduled, true},
		{"scheduled_to_in_transit", order.DeliveryScheduled, order.DeliveryInTransit, true},
		{"in_transit_to_delivered", order.DeliveryInTransit, order.DeliveryDelivered, true},
		{"scheduled_to_delayed", order.DeliveryScheduled, order.DeliveryDelayed, true},
		{"in_transit_to_delayed", order.DeliveryInTransit, order.DeliveryDelayed, true},
		{"delayed_resumes_in_transit", order.DeliveryDelayed, order.DeliveryInTransit, true},
		{"scheduled_to_cancelled", order.DeliveryScheduled, order.DeliveryCancelled, true},

		{"in_transit_back_to_scheduled", order.DeliveryInTransit, order.DeliveryScheduled, false},
		{"pending_to_in_transit", order.DeliveryPending, order.DeliveryInTransit, false},
		{"pending_to_cancelled", order.DeliveryPending, order.DeliveryCancelled, false},
		{"delivered_is_terminal", order.DeliveryDelivered, order.DeliveryDelayed, false},
		{"cancelled_is_terminal", order.DeliveryCancelled, order.DeliveryScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)

			if !tt.allowed {
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}
