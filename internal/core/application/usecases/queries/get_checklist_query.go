package queries

import (
	"errors"
	"strings"

	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrGetChecklistQueryIsNotConstructed = errors.New(
	"GetChecklistQuery must be created via NewGetChecklistQuery constructor",
)

// GetChecklistQuery retrieves the scan checklist of one invoice-derived
// loading.
type GetChecklistQuery struct {
	loadingID string
	guard     guard.ConstructorGuard
}

// NewGetChecklistQuery creates a checklist query for the given loading.
func NewGetChecklistQuery(loadingID string) (GetChecklistQuery, error) {
	if strings.TrimSpace(loadingID) == "" {
		return GetChecklistQuery{}, errs.NewValueIsRequiredError("loadingID")
	}
	return GetChecklistQuery{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChecklistQuery) Validate() error {
	return q.guard.Validate(ErrGetChecklistQueryIsNotConstructed)
}

// ChecklistLine is one row of a loading's checklist.
type ChecklistLine struct {
	Code        string
	Description string
	Unit        string
	ExpectedQty int
	ScannedQty  int
	Completed   bool
}

// GetChecklistQueryResponse reports a checklist with its overall progress.
type GetChecklistQueryResponse struct {
	LoadingID     string
	InvoiceNumber string
	Lines         []ChecklistLine
	TotalExpected int
	TotalScanned  int
	AllCompleted  bool
}
