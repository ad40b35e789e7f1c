package loading

import (
	"dockflow/internal/pkg/errs"
)

// Origin tags how a loading request entered the system.
type Origin int

const (
	// OriginUnknown represents an invalid or undefined origin.
	OriginUnknown Origin = iota

	// OriginManual marks operator or driver submitted loadings.
	// Manual loadings carry no product lines; scan reconciliation is undefined for them.
	OriginManual

	// OriginInvoiceImport marks loadings derived from an invoice document,
	// carrying expected product-line quantities for scan reconciliation.
	OriginInvoiceImport
)

// String returns the wire name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginManual:
		return "manual"
	case OriginInvoiceImport:
		return "invoice_import"
	default:
		return "unknown"
	}
}

// Priority is an ordinal display hint. It does not affect lifecycle transitions;
// only external ordering consumes it.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHigh
	PriorityUrgent
)

// PriorityFromString resolves a priority by its wire name.
// An empty string resolves to PriorityNormal.
func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "", "normal":
		return PriorityNormal, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	default:
		return PriorityNormal, errs.NewValueIsInvalidError("priority")
	}
}

// String returns the wire name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "normal"
	}
}

// Validate checks that the priority is one of the defined ordinals.
func (p Priority) Validate() error {
	if p < PriorityNormal || p > PriorityUrgent {
		return errs.NewValueIsInvalidError("priority")
	}
	return nil
}
