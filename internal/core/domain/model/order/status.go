package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the customer/manager-facing lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders follow
// the correct business workflow.
//
// State transitions:
//
//	PendingApproval ──> Approved ──> InProgress ──> Ready ──> Completed
//	       │
//	       └──> Cancelled (rejection; also reachable from any
//	            non-terminal state via administrative force-cancel)
//
// Status is a value object that validates state transitions and provides wire
// string representations shared by every consumer, so no subsystem keeps its own
// status string mapping.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendingApproval is the initial status when an order is first placed.
	// Orders in this status are waiting for a manager decision.
	StatusPendingApproval

	// StatusApproved indicates a manager accepted the order and gave a completion
	// estimate. The kitchen has not started working on it yet.
	StatusApproved

	// StatusInProgress indicates the kitchen has started preparing the order.
	StatusInProgress

	// StatusReady indicates the food is prepared and waiting to be served.
	StatusReady

	// StatusCompleted indicates the order was served. Terminal state.
	StatusCompleted

	// StatusCancelled indicates the order was rejected or force-cancelled.
	// Terminal state.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusPendingApproval: "pending_approval",
		StatusApproved:        "approved",
		StatusInProgress:      "in_progress",
		StatusReady:           "ready",
		StatusCompleted:       "completed",
		StatusCancelled:       "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingApproval: "pending_approval",
		StatusApproved:        "approved",
		StatusInProgress:      "in_progress",
		StatusReady:           "ready",
		StatusCompleted:       "completed",
		StatusCancelled:       "cancelled",
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "pending_approval".
// This method implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible from the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - PendingApproval -> Approved
//
// Returns an InvalidTransitionError carrying the attempted event and the current
// state when called from any other status.
func (s Status) Approve() (Status, error) {
	if s != StatusPendingApproval {
		return 0, errs.NewInvalidTransitionError("approve", s.String())
	}

	return StatusApproved, nil
}

// Reject transitions the status to Cancelled via the rejection shortcut.
//
// Valid transitions:
//   - PendingApproval -> Cancelled
//
// Rejection is only meaningful before approval; anything later must go through
// the administrative force-cancel.
func (s Status) Reject() (Status, error) {
	if s != StatusPendingApproval {
		return 0, errs.NewInvalidTransitionError("reject", s.String())
	}

	return StatusCancelled, nil
}

// StartPreparing transitions the status to InProgress when the kitchen first
// begins working on the order.
//
// Valid transitions:
//   - Approved -> InProgress
func (s Status) StartPreparing() (Status, error) {
	if s != StatusApproved {
		return 0, errs.NewInvalidTransitionError("start preparing", s.String())
	}

	return StatusInProgress, nil
}

// MarkReady transitions the status to Ready when the kitchen finishes preparation.
//
// Valid transitions:
//   - InProgress -> Ready
func (s Status) MarkReady() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidTransitionError("mark ready", s.String())
	}

	return StatusReady, nil
}

// Complete transitions the status to Completed once pickup/serving is confirmed.
//
// Valid transitions:
//   - Ready -> Completed
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != StatusReady {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}

	return StatusCompleted, nil
}

// ForceCancel transitions any non-terminal status to Cancelled.
// Reserved for explicit administrative action; not part of the default flow.
func (s Status) ForceCancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("force cancel", s.String())
	}

	return StatusCancelled, nil
}
