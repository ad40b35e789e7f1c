package queries

import (
	"errors"
	"strings"
	"time"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/guard"
)

var ErrListLoadingsQueryIsNotConstructed = errors.New(
	"ListLoadingsQuery must be created via NewListLoadingsQuery constructor",
)

// ListLoadingsQuery retrieves active loadings, optionally narrowed by status
// and by a case-insensitive free-text needle matched against driver, vehicle,
// route, invoice number and counterparty.
type ListLoadingsQuery struct {
	status *loading.Status
	text   string
	guard  guard.ConstructorGuard
}

// NewListLoadingsQuery creates a listing query. statusName narrows by status
// when non-empty; text narrows by free-text when non-empty.
func NewListLoadingsQuery(statusName, text string) (ListLoadingsQuery, error) {
	q := ListLoadingsQuery{
		text:  strings.TrimSpace(text),
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(statusName) != "" {
		status, err := loading.StatusFromString(statusName)
		if err != nil {
			return ListLoadingsQuery{}, err
		}
		q.status = &status
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListLoadingsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadingsQueryIsNotConstructed)
}

// ListLoadingsQueryResponse is one row of the loading list.
type ListLoadingsQueryResponse struct {
	ID            string
	Origin        string
	Status        string
	Priority      string
	DockID        *int
	Driver        string
	Vehicle       string
	Route         string
	InvoiceNumber string
	Counterparty  string
	CreatedAt     time.Time
}
