package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or ZeroMoney constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money represents a non-negative monetary amount stored as integer cents.
// Storing cents avoids floating-point rounding drift when totals are summed.
// Money is an immutable value object; arithmetic methods return new instances.
//
// Example:
//
//	price, err := kernel.NewMoney(1050) // $10.50
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("price: %s", price) // Output: price: 10.50
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// The amount must not be negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a Money value of zero cents.
// Used as the starting point when summing order item totals.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return Money{
		cents: m.cents + other.cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MultiplyBy returns the Money value multiplied by a positive quantity.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Money{
		cents: m.cents * int64(quantity),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// FormatCents renders a cent amount with two decimal places, e.g. "10.50".
// It is the single wire format for money; adapters rendering raw cent columns
// use it so their output cannot drift from Money.String.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// String returns the amount formatted with two decimal places, e.g. "10.50".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return FormatCents(m.cents)
}

// Validate ensures the Money value was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
