package queries

import (
	"errors"
	"time"

	"dockflow/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves the aggregated engine statistics.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a stats query.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// LongOccupiedDock flags a dock held past the configured threshold.
type LongOccupiedDock struct {
	DockID        int
	LoadingID     string
	OccupiedSince time.Time
	HeldFor       time.Duration
}

// GetStatsQueryResponse is the aggregated view over the registry and the pool.
// CompletedToday spans both active and archived loadings whose completion
// falls on the current civil date.
type GetStatsQueryResponse struct {
	Waiting    int
	Approved   int
	InProgress int
	Completed  int
	Cancelled  int

	CompletedToday     int
	DocksTotal         int
	DocksOccupied      int
	UtilizationPercent int
	LongOccupied       []LongOccupiedDock
}
