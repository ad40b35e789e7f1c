package queries

import (
	"errors"
	"time"

	"dockflow/internal/pkg/guard"
)

var ErrExportDayQueryIsNotConstructed = errors.New(
	"ExportDayQuery must be created via NewExportDayQuery constructor",
)

// ExportDayQuery retrieves the terminal-state loadings of one civil date as
// fixed-column rows, ready for tabular export.
type ExportDayQuery struct {
	day   time.Time
	guard guard.ConstructorGuard
}

// NewExportDayQuery creates an export query for the civil date of the given
// time, interpreted in local time.
func NewExportDayQuery(day time.Time) ExportDayQuery {
	return ExportDayQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ExportDayQuery) Validate() error {
	return q.guard.Validate(ErrExportDayQueryIsNotConstructed)
}

// ExportDayQueryResponse is one fixed-column row of the day export. Times are
// pre-formatted strings; optional columns are empty when not applicable.
type ExportDayQueryResponse struct {
	Date         string
	Time         string
	Origin       string
	Counterparty string
	Reference    string
	Route        string
	Dock         string
	Status       string
	StartTime    string
	EndTime      string
}
