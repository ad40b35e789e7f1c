package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDockConflict      = errors.New("dock is occupied")
	ErrNoDockAvailable   = errors.New("no dock available")
	ErrScanMismatch      = errors.New("scan mismatch")
	ErrNotApplicable     = errors.New("operation not applicable")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value does not satisfy validation rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value lies outside its allowed interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a loading or dock lookup failed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates a requested lifecycle operation is not a legal
// edge of the loading state machine from the current status.
type InvalidTransitionError struct {
	Operation string
	From      string
	Cause     error
}

func NewInvalidTransitionError(operation, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, From: from}
}

func NewInvalidTransitionErrorWithCause(operation, from string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, From: from, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s from status %s (cause: %s)",
			ErrInvalidTransition, sanitize(e.Operation), sanitize(e.From), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: cannot %s from status %s", ErrInvalidTransition, sanitize(e.Operation), sanitize(e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DockConflictError indicates a requested dock is already bound to another loading.
type DockConflictError struct {
	DockID     int
	OccupantID string
}

func NewDockConflictError(dockID int, occupantID string) *DockConflictError {
	return &DockConflictError{DockID: dockID, OccupantID: occupantID}
}

func (e *DockConflictError) Error() string {
	return fmt.Sprintf("%s: dock %d is held by loading %s", ErrDockConflict, e.DockID, sanitize(e.OccupantID))
}

func (e *DockConflictError) Unwrap() error {
	return ErrDockConflict
}

// NoDockAvailableError indicates every dock in the pool is occupied.
type NoDockAvailableError struct {
	PoolSize int
}

func NewNoDockAvailableError(poolSize int) *NoDockAvailableError {
	return &NoDockAvailableError{PoolSize: poolSize}
}

func (e *NoDockAvailableError) Error() string {
	return fmt.Sprintf("%s: all %d docks are occupied", ErrNoDockAvailable, e.PoolSize)
}

func (e *NoDockAvailableError) Unwrap() error {
	return ErrNoDockAvailable
}

// Reasons reported by ScanMismatchError.
const (
	ScanReasonCodeNotFound    = "code not found"
	ScanReasonAlreadyComplete = "already complete"
)

// ScanMismatchError indicates a scanned code could not be reconciled against the
// loading's product lines, either because no line matches or the matched line is
// already fully scanned.
type ScanMismatchError struct {
	Code   string
	Reason string
}

func NewScanMismatchError(code, reason string) *ScanMismatchError {
	return &ScanMismatchError{Code: code, Reason: reason}
}

func (e *ScanMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrScanMismatch, sanitize(e.Reason), sanitize(e.Code))
}

func (e *ScanMismatchError) Unwrap() error {
	return ErrScanMismatch
}

// NotApplicableError indicates an operation that is undefined for the target,
// such as scan reconciliation on a manually created loading.
type NotApplicableError struct {
	Operation string
	Reason    string
}

func NewNotApplicableError(operation, reason string) *NotApplicableError {
	return &NotApplicableError{Operation: operation, Reason: reason}
}

func (e *NotApplicableError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrNotApplicable, sanitize(e.Operation), sanitize(e.Reason))
}

func (e *NotApplicableError) Unwrap() error {
	return ErrNotApplicable
}
