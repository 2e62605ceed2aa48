package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// KitchenStatus tracks food preparation progress. It is a sub-lifecycle of the
// order: it only carries meaning while the order status is Approved or InProgress,
// and it never moves backward or skips a step.
//
//	None ──(approval)──> Pending ──> Preparing ──> Ready
type KitchenStatus int

const (
	// KitchenStatusNone means the order has no kitchen state yet, i.e. it has not
	// been approved, or the kitchen sub-lifecycle is already over.
	KitchenStatusNone KitchenStatus = iota

	// KitchenStatusPending means the order is approved and queued for the kitchen.
	KitchenStatusPending

	// KitchenStatusPreparing means the kitchen is actively working on the order.
	KitchenStatusPreparing

	// KitchenStatusReady means preparation is finished.
	KitchenStatusReady
)

func getKitchenStatusStrings() map[KitchenStatus]string {
	return map[KitchenStatus]string{
		KitchenStatusNone:      "",
		KitchenStatusPending:   "pending",
		KitchenStatusPreparing: "preparing",
		KitchenStatusReady:     "ready",
	}
}

// KitchenStatusFromString parses a wire representation into a KitchenStatus.
// The empty string maps to KitchenStatusNone. Returns an error for
// unrecognized values.
func KitchenStatusFromString(s string) (KitchenStatus, error) {
	for status, str := range getKitchenStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return KitchenStatusNone, errs.NewValueIsInvalidErrorWithCause("kitchenStatus",
		fmt.Errorf("%q is not a valid kitchen status", s))
}

// String returns the wire representation of the kitchen status, e.g. "preparing".
// KitchenStatusNone renders as the empty string: an unapproved order has no
// kitchen state to show.
func (k KitchenStatus) String() string {
	if str, ok := getKitchenStatusStrings()[k]; ok {
		return str
	}
	return ""
}

// Validate checks if the KitchenStatus value is one of the defined constants.
func (k KitchenStatus) Validate() error {
	if _, ok := getKitchenStatusStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kitchenStatus",
			fmt.Errorf("%d is not a valid kitchen status", k))
	}
	return nil
}

// Advance transitions the kitchen status one step forward to target.
//
// Valid transitions:
//   - Pending -> Preparing
//   - Preparing -> Ready
//
// Backward and skipped transitions (e.g. Pending -> Ready) are rejected with an
// InvalidTransitionError carrying the attempted target and the current state.
func (k KitchenStatus) Advance(target KitchenStatus) (KitchenStatus, error) {
	valid := (k == KitchenStatusPending && target == KitchenStatusPreparing) ||
		(k == KitchenStatusPreparing && target == KitchenStatusReady)

	if !valid {
		return 0, errs.NewInvalidTransitionError("kitchen "+target.String(), "kitchen "+k.String())
	}

	return target, nil
}
