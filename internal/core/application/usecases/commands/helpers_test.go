package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return a
}

func customerActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, kernel.RoleCustomer)
	require.NoError(t, err)
	return a
}

// catalogOrder returns a catalog order awaiting payment.
func catalogOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.KindCatalog, kernel.NewUUID(), mustMoney(t, 4200), "")
	require.NoError(t, err)
	return o
}

// customOrder returns a custom order pending design review.
func customOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), order.KindCustom, kernel.NewUUID(), mustMoney(t, 9000), "walnut desk")
	require.NoError(t, err)
	return o
}

// confirmedOrder returns a catalog order with a verified payment.
func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := catalogOrder(t)
	applied, err := o.VerifyPayment(order.DecisionVerify, adminActor(t))
	require.NoError(t, err)
	require.True(t, applied)
	return o
}

// deliveredOrder returns a catalog order walked through the full delivery
// flow.
func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	admin := adminActor(t)
	o := confirmedOrder(t)
	require.NoError(t, o.MarkScheduled(admin))
	require.NoError(t, o.AdvanceDelivery(order.DeliveryInTransit, admin))
	require.NoError(t, o.AdvanceDelivery(order.DeliveryDelivered, admin))
	return o
}
