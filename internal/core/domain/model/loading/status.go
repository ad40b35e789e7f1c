package loading

import (
	"dockflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a loading request.
// It implements a state machine whose only legal edges are:
//
//	Waiting    ──approve──>  Approved
//	Waiting    ──cancel───>  Cancelled   [terminal]
//	Approved   ──revert───>  Waiting
//	Approved   ──start────>  InProgress
//	Approved   ──cancel───>  Cancelled   [terminal]
//	InProgress ──pause────>  Approved
//	InProgress ──complete─>  Completed   [terminal]
//	InProgress ──cancel───>  Cancelled   [terminal]
//
// Any other requested transition fails with an InvalidTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of every enqueued loading.
	Waiting

	// Approved means the loading was accepted and may be started at a dock.
	Approved

	// InProgress means the loading is bound to a dock and items are being scanned.
	InProgress

	// Completed means the loading finished at its dock. Terminal.
	Completed

	// Cancelled means the loading was withdrawn before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Waiting:    "Waiting",
		Approved:   "Approved",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "Waiting",
		Approved:   "Approved",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString resolves a status by its string name, case-sensitively.
// Used when external callers filter loadings by status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Approve transitions Waiting -> Approved.
func (s Status) Approve() (Status, error) {
	if s != Waiting {
		return 0, errs.NewInvalidTransitionError("approve", s.String())
	}
	return Approved, nil
}

// Revert transitions Approved -> Waiting, undoing an approval.
func (s Status) Revert() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidTransitionError("revert", s.String())
	}
	return Waiting, nil
}

// Start transitions Approved -> InProgress when a dock is bound.
func (s Status) Start() (Status, error) {
	if s != Approved {
		return 0, errs.NewInvalidTransitionError("start", s.String())
	}
	return InProgress, nil
}

// Pause transitions InProgress -> Approved, releasing the dock.
func (s Status) Pause() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("pause", s.String())
	}
	return Approved, nil
}

// Complete transitions InProgress -> Completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}

// Cancel transitions any non-terminal status -> Cancelled.
// Cancelling an already terminal loading is rejected.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}
