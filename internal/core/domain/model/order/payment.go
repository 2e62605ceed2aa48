package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// PaymentMethod records how the customer intends to settle the bill. Payment
// processing itself happens outside this system; the order only carries the choice.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCash is paid at the table or counter.
	PaymentMethodCash

	// PaymentMethodCard is paid by card at the table.
	PaymentMethodCard

	// PaymentMethodOnline is paid through the customer app.
	PaymentMethodOnline
)

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodCash:   "cash",
		PaymentMethodCard:   "card",
		PaymentMethodOnline: "online",
	}
}

// PaymentMethodFromString parses a wire representation into a PaymentMethod.
// Returns an error for unrecognized values.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire representation of the payment method, e.g. "cash".
func (p PaymentMethod) String() string {
	if str, ok := getValidPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentMethod value is valid.
func (p PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}
