package queries

import (
	"context"
	"math"
	"time"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/core/domain/services"
)

// GetStatsQueryHandler aggregates counts and occupancy summaries on demand.
// It owns no state of its own; the long-occupied derivation is delegated to
// the dock allocator so both sides apply the same threshold rule.
type GetStatsQueryHandler struct {
	loadings              LoadingReader
	docks                 DockReader
	allocator             services.DockAllocator
	longOccupiedThreshold time.Duration
}

// NewGetStatsQueryHandler creates a handler for stats queries. Docks held
// longer than the threshold are flagged in the response.
func NewGetStatsQueryHandler(
	loadings LoadingReader,
	docks DockReader,
	allocator services.DockAllocator,
	longOccupiedThreshold time.Duration,
) GetStatsQueryHandler {
	return GetStatsQueryHandler{
		loadings:              loadings,
		docks:                 docks,
		allocator:             allocator,
		longOccupiedThreshold: longOccupiedThreshold,
	}
}

// Handle computes the aggregated statistics as of now.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context,
	query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	active, err := h.loadings.SnapshotLoadings(ctx)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}
	archived, err := h.loadings.SnapshotArchived(ctx)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}
	docks, err := h.docks.SnapshotDocks(ctx)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	now := time.Now()
	response := GetStatsQueryResponse{DocksTotal: len(docks)}

	for _, s := range active {
		switch s.Status {
		case loading.Waiting:
			response.Waiting++
		case loading.Approved:
			response.Approved++
		case loading.InProgress:
			response.InProgress++
		case loading.Completed:
			response.Completed++
		case loading.Cancelled:
			response.Cancelled++
		}
		if completedOn(s, now) {
			response.CompletedToday++
		}
	}
	for _, s := range archived {
		if completedOn(s, now) {
			response.CompletedToday++
		}
	}

	for _, d := range docks {
		if d.Occupied {
			response.DocksOccupied++
		}
	}
	for _, d := range h.allocator.LongOccupied(docks, now, h.longOccupiedThreshold) {
		row := LongOccupiedDock{
			DockID:    d.ID,
			LoadingID: d.OccupantLoadingID,
			HeldFor:   d.OccupationDuration(now),
		}
		if d.OccupiedSince != nil {
			row.OccupiedSince = *d.OccupiedSince
		}
		response.LongOccupied = append(response.LongOccupied, row)
	}

	if response.DocksTotal > 0 {
		ratio := float64(response.DocksOccupied) / float64(response.DocksTotal)
		response.UtilizationPercent = int(math.Round(ratio * 100))
	}
	return response, nil
}

// completedOn reports whether the loading finished on the same civil date as
// the reference time, in local time.
func completedOn(s loading.Snapshot, ref time.Time) bool {
	if s.CompletedAt == nil {
		return false
	}
	y1, m1, d1 := s.CompletedAt.Local().Date()
	y2, m2, d2 := ref.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
