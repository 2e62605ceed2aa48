package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// TableNumberMin is the lowest valid table number in any restaurant layout.
const TableNumberMin = 1

// ErrTableNumberIsNotConstructed is returned when attempting to use an improperly
// initialized TableNumber. Table numbers must be created via NewTableNumber.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"table number must be created via NewTableNumber constructor")

// TableNumber identifies a physical table in the restaurant. The upper bound is not
// fixed by the domain: each deployment configures how many tables it has, so the
// constructor takes the configured maximum alongside the value.
//
// TableNumber is an immutable value object; the zero value is invalid.
//
// Example:
//
//	table, err := kernel.NewTableNumber(7, 50)
//	if err != nil {
//	    // requested table is outside the configured range
//	}
type TableNumber struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewTableNumber creates a TableNumber validated against the configured table count.
// The value must lie in [TableNumberMin..maxTables]. Returns a range error naming
// both bounds when the value falls outside them.
func NewTableNumber(value int, maxTables int) (TableNumber, error) {
	if maxTables < TableNumberMin {
		return TableNumber{}, errs.NewValueIsInvalidErrorWithCause("maxTables",
			fmt.Errorf("%d is not a valid table count", maxTables))
	}

	if value < TableNumberMin || value > maxTables {
		return TableNumber{}, errs.NewValueIsOutOfRangeError("tableNumber", value, TableNumberMin, maxTables)
	}

	return TableNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the table number.
func (t TableNumber) Value() int {
	return t.value
}

// IsEqual compares two table numbers by value.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.value == other.value
}

// String returns the table number as a decimal string.
func (t TableNumber) String() string {
	return fmt.Sprintf("%d", t.value)
}

// Validate ensures the TableNumber was created through the constructor.
func (t TableNumber) Validate() error {
	return t.guard.Validate(ErrTableNumberIsNotConstructed)
}
