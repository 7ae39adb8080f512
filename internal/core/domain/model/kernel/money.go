package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via the NewMoney constructor")

// Money represents a non-negative monetary amount in minor currency units.
// It is an immutable value object; the zero value is invalid and fails
// validation.
//
// Example:
//
//	total, err := kernel.NewMoney(150_000)
//	if err != nil {
//	    // handle validation error
//	}
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
// The amount must not be negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsGreaterThan reports whether m exceeds other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

// Validate ensures the value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
