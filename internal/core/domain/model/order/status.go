package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the dispatch workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Completed
//	          │
//	          └──> Rejected
//
// Rejected may be entered from any status; it is only ever used from Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The order waits for a restaurant.
	Pending

	// Accepted indicates a restaurant took the order and holds capacity for it.
	Accepted

	// Completed indicates the restaurant finished the order. Final.
	Completed

	// Rejected indicates no restaurant could take the order. Final.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Completed: "Completed",
		Rejected:  "Rejected",
	}
}

// Validate checks if the Status value is one of the known lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for
// anything outside the lifecycle.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is expected.
func (s Status) IsFinal() bool {
	return s == Completed || s == Rejected
}

// Accept transitions Pending -> Accepted.
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (0, *errs.StateIsInvalidError) from any other status
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Complete transitions Accepted -> Completed.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, *errs.StateIsInvalidError) from any other status, Completed included
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Reject transitions any status to Rejected. It never fails.
func (s Status) Reject() Status {
	return Rejected
}
