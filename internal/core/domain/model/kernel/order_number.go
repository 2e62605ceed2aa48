package kernel

import (
	"fmt"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrOrderNumberIsNotConstructed is returned when attempting to use an improperly
// initialized OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via GenerateOrderNumber or OrderNumberFromString")

// OrderNumber is the human-readable identifier printed on receipts and shown on the
// kitchen display. It is assigned once at order creation and never changes.
// Format: ORD-YYYYMMDD-XXXXXX where the suffix is a random hex fragment.
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// GenerateOrderNumber creates a fresh order number for the given creation time.
// The random suffix keeps concurrent creations from colliding; the database
// unique index is the final arbiter.
func GenerateOrderNumber(now time.Time) OrderNumber {
	raw := uuid.New()
	return OrderNumber{
		value: fmt.Sprintf("ORD-%s-%X", now.Format("20060102"), raw[:3]),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromString reconstructs an order number from persistence.
// The value must be non-blank.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if strings.TrimSpace(s) == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return OrderNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate ensures the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
