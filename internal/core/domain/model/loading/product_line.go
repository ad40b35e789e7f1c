package loading

import (
	"strings"

	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

// ErrProductLineIsNotConstructed is returned when using a ProductLine not created
// via NewProductLine.
var ErrProductLineIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductLine must be created via NewProductLine constructor")

// ProductLine is one invoice item tracked against physical scans.
// It is a child entity owned by an imported Loading.
//
// Invariants, held at all times:
//   - 0 <= scannedQty <= expectedQty
//   - completed == true iff scannedQty == expectedQty
type ProductLine struct {
	// code is the product code scans are matched against
	code string

	// description is the invoice's free-text item description
	description string

	// unit is the invoice unit of measure (e.g. "UN", "CX")
	unit string

	// expectedQty is the invoice quantity, fixed at creation
	expectedQty int

	// scannedQty counts successful scans, never exceeds expectedQty
	scannedQty int

	// completed mirrors scannedQty == expectedQty
	completed bool

	guard guard.ConstructorGuard
}

// NewProductLine creates a product line from invoice data with zero scan progress.
func NewProductLine(code, description, unit string, expectedQty int) (*ProductLine, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("product code")
	}
	if expectedQty <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("expectedQty", expectedQty, 1, int(^uint(0)>>1))
	}

	return &ProductLine{
		code:        code,
		description: description,
		unit:        unit,
		expectedQty: expectedQty,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created via NewProductLine.
func (p *ProductLine) Validate() error {
	if p == nil {
		return ErrProductLineIsNotConstructed
	}
	return p.guard.Validate(ErrProductLineIsNotConstructed)
}

// Code returns the product code.
func (p *ProductLine) Code() string {
	return p.code
}

// Description returns the invoice item description.
func (p *ProductLine) Description() string {
	return p.description
}

// Unit returns the invoice unit of measure.
func (p *ProductLine) Unit() string {
	return p.unit
}

// ExpectedQty returns the quantity the invoice expects.
func (p *ProductLine) ExpectedQty() int {
	return p.expectedQty
}

// ScannedQty returns the number of successful scans recorded so far.
func (p *ProductLine) ScannedQty() int {
	return p.scannedQty
}

// Completed reports whether the line is fully scanned.
func (p *ProductLine) Completed() bool {
	return p.completed
}

// MatchesExactly reports whether the scanned code equals this line's code.
func (p *ProductLine) MatchesExactly(code string) bool {
	return p.code == code
}

// MatchesLoosely reports whether the scanned code relates to this line's code by
// bidirectional substring containment. This policy is ambiguous when one product
// code is a substring of another; callers resolve ties by registration order
// after trying exact matches first.
func (p *ProductLine) MatchesLoosely(code string) bool {
	if code == "" {
		return false
	}
	return strings.Contains(p.code, code) || strings.Contains(code, p.code)
}

// RecordScan registers one successful scan against the line.
// Returns a ScanMismatchError and leaves the line untouched when it is already
// fully scanned. Reaching the expected quantity marks the line completed.
func (p *ProductLine) RecordScan() error {
	if p.scannedQty >= p.expectedQty {
		return errs.NewScanMismatchError(p.code, errs.ScanReasonAlreadyComplete)
	}
	p.scannedQty++
	if p.scannedQty == p.expectedQty {
		p.completed = true
	}
	return nil
}

// ProductLineSnapshot is an immutable view of a product line for read-side consumers.
type ProductLineSnapshot struct {
	Code        string
	Description string
	Unit        string
	ExpectedQty int
	ScannedQty  int
	Completed   bool
}

// Snapshot returns a copy of the line's observable state.
func (p *ProductLine) Snapshot() ProductLineSnapshot {
	return ProductLineSnapshot{
		Code:        p.code,
		Description: p.description,
		Unit:        p.unit,
		ExpectedQty: p.expectedQty,
		ScannedQty:  p.scannedQty,
		Completed:   p.completed,
	}
}
