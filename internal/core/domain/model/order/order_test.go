package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newCatalogOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.KindCatalog, kernel.NewUUID(), mustMoney(t, 100_000), "")
	require.NoError(t, err)
	return o
}

func newCustomOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.KindCustom, kernel.NewUUID(), mustMoney(t, 250_000), "embroidered barong, size M")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("catalog_starts_awaiting_payment", func(t *testing.T) {
		o := newCatalogOrder(t)

		assert.Equal(t, order.AwaitingPayment, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("custom_starts_design_pending", func(t *testing.T) {
		o := newCustomOrder(t)

		assert.Equal(t, order.DesignPending, o.Status())
	})

	t.Run("custom_requires_design_brief", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.KindCustom, kernel.NewUUID(), mustMoney(t, 100), "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_customer_fails", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), order.KindCatalog, kernel.UUID{}, mustMoney(t, 100), "")

		assert.Error(t, err)
	})
}

func TestOrder_VerifyPayment(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)

	t.Run("verify_confirms_order", func(t *testing.T) {
		o := newCatalogOrder(t)

		applied, err := o.VerifyPayment(order.DecisionVerify, admin)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, order.PaymentVerified, o.PaymentStatus())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 2, o.Version())

		require.Len(t, o.PendingAudit(), 1)
		entry := o.PendingAudit()[0]
		assert.Equal(t, "verified", entry.Decision)
		assert.Equal(t, order.PaymentPending, entry.PreviousPayment)
		assert.Equal(t, admin.ID(), entry.ActorID)
	})

	t.Run("reject_keeps_order_awaiting_payment", func(t *testing.T) {
		o := newCatalogOrder(t)

		applied, err := o.VerifyPayment(order.DecisionReject, admin)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, order.PaymentRejected, o.PaymentStatus())
		assert.Equal(t, order.AwaitingPayment, o.Status())
	})

	t.Run("same_decision_is_idempotent", func(t *testing.T) {
		o := newCatalogOrder(t)

		_, err := o.VerifyPayment(order.DecisionVerify, admin)
		require.NoError(t, err)
		versionAfterFirst := o.Version()

		applied, err := o.VerifyPayment(order.DecisionVerify, admin)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, versionAfterFirst, o.Version())
	})

	t.Run("conflicting_decision_on_resolved_gate_fails", func(t *testing.T) {
		o := newCatalogOrder(t)

		_, err := o.VerifyPayment(order.DecisionVerify, admin)
		require.NoError(t, err)

		_, err = o.VerifyPayment(order.DecisionReject, admin)

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("customer_cannot_verify", func(t *testing.T) {
		o := newCatalogOrder(t)

		_, err := o.VerifyPayment(order.DecisionVerify, mustActor(t, kernel.RoleCustomer))

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("custom_order_cannot_be_verified_before_design_approval", func(t *testing.T) {
		o := newCustomOrder(t)

		_, err := o.VerifyPayment(order.DecisionVerify, admin)

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("custom_order_verified_after_design_approval", func(t *testing.T) {
		o := newCustomOrder(t)
		require.NoError(t, o.ReviewDesign(true, admin))

		applied, err := o.VerifyPayment(order.DecisionVerify, admin)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_ResubmitPayment(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)
	customer := mustActor(t, kernel.RoleCustomer)

	o := newCatalogOrder(t)
	_, err := o.VerifyPayment(order.DecisionReject, admin)
	require.NoError(t, err)

	require.NoError(t, o.ResubmitPayment(customer))
	assert.Equal(t, order.PaymentPending, o.PaymentStatus())

	// a second verification round may now succeed
	applied, err := o.VerifyPayment(order.DecisionVerify, admin)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestOrder_ReviewDesign(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)

	t.Run("rejection_allows_resubmission", func(t *testing.T) {
		o := newCustomOrder(t)
		customer := mustActor(t, kernel.RoleCustomer)

		require.NoError(t, o.ReviewDesign(false, admin))
		assert.Equal(t, order.DesignRejected, o.Status())

		require.NoError(t, o.TransitionTo(order.DesignPending, customer))
		assert.Equal(t, order.DesignPending, o.Status())
	})

	t.Run("catalog_orders_have_no_design_gate", func(t *testing.T) {
		o := newCatalogOrder(t)

		err := o.ReviewDesign(true, admin)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_CancellationFlow(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)
	customer := mustActor(t, kernel.RoleCustomer)

	t.Run("request_and_approve", func(t *testing.T) {
		o := newCatalogOrder(t)

		prior, err := o.BeginCancellation(customer)
		require.NoError(t, err)
		assert.Equal(t, order.AwaitingPayment, prior)
		assert.Equal(t, order.CancelRequested, o.Status())

		require.NoError(t, o.ApproveCancellation(admin))
		assert.Equal(t, order.Cancelled, o.Status())
		// payment was never verified, so delivery never left pending
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
	})

	t.Run("deny_restores_prior_status", func(t *testing.T) {
		o := newCatalogOrder(t)
		_, err := o.VerifyPayment(order.DecisionVerify, admin)
		require.NoError(t, err)

		prior, err := o.BeginCancellation(customer)
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, prior)

		require.NoError(t, o.DeclineCancellation(prior, admin))
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("delivered_order_is_not_cancellable", func(t *testing.T) {
		o := deliveredOrder(t)

		_, err := o.BeginCancellation(customer)

		assert.ErrorIs(t, err, errs.ErrNotCancellable)
	})

	t.Run("second_request_reports_already_pending", func(t *testing.T) {
		o := newCatalogOrder(t)

		_, err := o.BeginCancellation(customer)
		require.NoError(t, err)

		_, err = o.BeginCancellation(customer)
		assert.ErrorIs(t, err, errs.ErrAlreadyPending)
	})

	t.Run("approving_cancels_active_delivery", func(t *testing.T) {
		o := scheduledOrder(t)

		_, err := o.BeginCancellation(customer)
		require.NoError(t, err)
		require.NoError(t, o.ApproveCancellation(admin))

		assert.Equal(t, order.DeliveryCancelled, o.DeliveryStatus())
	})
}

func TestOrder_RefundFlow(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)
	customer := mustActor(t, kernel.RoleCustomer)

	t.Run("amount_above_total_fails", func(t *testing.T) {
		o := deliveredOrder(t)

		err := o.BeginRefund(mustMoney(t, 999_999), customer)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("refund_only_after_delivery", func(t *testing.T) {
		o := newCatalogOrder(t)

		err := o.BeginRefund(mustMoney(t, 100), customer)

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("approve_moves_to_refunded", func(t *testing.T) {
		o := deliveredOrder(t)

		require.NoError(t, o.BeginRefund(mustMoney(t, 50_000), customer))
		require.NoError(t, o.ApproveRefund(admin))

		assert.Equal(t, order.Refunded, o.Status())
	})

	t.Run("deny_restores_delivered", func(t *testing.T) {
		o := deliveredOrder(t)

		require.NoError(t, o.BeginRefund(mustMoney(t, 50_000), customer))
		require.NoError(t, o.DeclineRefund(admin))

		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_DeliveryProgression(t *testing.T) {
	admin := mustActor(t, kernel.RoleAdmin)

	t.Run("scheduling_requires_verified_payment", func(t *testing.T) {
		o := newCatalogOrder(t)

		err := o.MarkScheduled(admin)

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
	})

	t.Run("full_custom_order_happy_path", func(t *testing.T) {
		o := newCustomOrder(t)

		require.NoError(t, o.ReviewDesign(true, admin))
		applied, err := o.VerifyPayment(order.DecisionVerify, admin)
		require.NoError(t, err)
		require.True(t, applied)

		require.NoError(t, o.MarkScheduled(admin))
		assert.Equal(t, order.Scheduled, o.Status())
		assert.Equal(t, order.DeliveryScheduled, o.DeliveryStatus())

		require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.AdvanceDelivery(order.DeliveryDelivered, admin))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
	})

	t.Run("no_regression_from_in_transit", func(t *testing.T) {
		o := scheduledOrder(t)
		require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))

		err := o.AdvanceDelivery(order.DeliveryScheduled, admin)

		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("delay_and_resume", func(t *testing.T) {
		o := scheduledOrder(t)
		require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))

		require.NoError(t, o.AdvanceDelivery(order.DeliveryDelayed, admin))
		assert.Equal(t, order.InTransit, o.Status())

		require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))
		assert.Equal(t, order.DeliveryInTransit, o.DeliveryStatus())
	})

	t.Run("delivery_never_leaves_pending_without_verified_payment", func(t *testing.T) {
		o := newCatalogOrder(t)

		// every mutation available before verification keeps delivery pending
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.ErrorIs(t, o.MarkScheduled(admin), errs.ErrInvalidStateTransition)
		assert.Error(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))
		assert.ErrorIs(t, o.AdvanceDelivery(order.DeliveryCancelled, admin), errs.ErrInvalidStateTransition)
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})
}

func TestOrder_CheckVersion(t *testing.T) {
	o := newCatalogOrder(t)

	require.NoError(t, o.CheckVersion(1))

	err := o.CheckVersion(5)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

// deliveredOrder builds a catalog order driven through the full happy path.
func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := scheduledOrder(t)
	admin := mustActor(t, kernel.RoleAdmin)
	require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))
	require.NoError(t, o.AdvanceDelivery(order.DeliveryDelivered, admin))
	return o
}

// scheduledOrder builds a catalog order with verified payment and an
// assigned delivery schedule.
func scheduledOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newCatalogOrder(t)
	admin := mustActor(t, kernel.RoleAdmin)
	_, err := o.VerifyPayment(order.DecisionVerify, admin)
	require.NoError(t, err)
	require.NoError(t, o.MarkScheduled(admin))
	return o
}
