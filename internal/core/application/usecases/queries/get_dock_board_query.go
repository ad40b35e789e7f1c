package queries

import (
	"errors"
	"time"

	"dockflow/internal/pkg/guard"
)

var ErrGetDockBoardQueryIsNotConstructed = errors.New(
	"GetDockBoardQuery must be created via NewGetDockBoardQuery constructor",
)

// GetDockBoardQuery retrieves the occupancy board of the whole dock pool.
type GetDockBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDockBoardQuery creates a dock board query.
func NewGetDockBoardQuery() GetDockBoardQuery {
	return GetDockBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDockBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDockBoardQueryIsNotConstructed)
}

// GetDockBoardQueryResponse is one row of the dock board. The occupant fields
// are zero-valued for free docks, and Reference carries the occupant's vehicle
// plate or invoice number depending on its origin.
type GetDockBoardQueryResponse struct {
	DockID        int
	Occupied      bool
	LoadingID     string
	Reference     string
	Route         string
	OccupiedSince *time.Time
}
