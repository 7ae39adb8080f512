package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order.
// Custom orders must carry a design brief; catalog orders must not.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.KindCustom, customerID, total, "oak bookshelf, 2m")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	kind        order.Kind
	customerID  kernel.UUID
	total       kernel.Money
	designBrief string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, kind and total; the brief/kind pairing is checked
// by the order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	kind order.Kind,
	customerID kernel.UUID,
	total kernel.Money,
	designBrief string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind),
		cmd.setCustomerID(customerID),
		cmd.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.designBrief = designBrief
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns the order kind.
func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Total returns the order total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// DesignBrief returns the design brief for custom orders.
func (c CreateOrderCommand) DesignBrief() string {
	return c.designBrief
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.total = total
	return nil
}
