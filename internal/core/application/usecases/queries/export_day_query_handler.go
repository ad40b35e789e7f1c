package queries

import (
	"context"
	"strconv"
	"time"

	"dockflow/internal/core/domain/model/loading"
)

const (
	exportDateLayout = "2006-01-02"
	exportTimeLayout = "15:04"
)

// ExportDayQueryHandler builds the day-export rows. It spans both the active
// registry and the archive, so the export stays complete after the nightly
// sweep has moved completed loadings out.
type ExportDayQueryHandler struct {
	loadings LoadingReader
}

// NewExportDayQueryHandler creates a handler for day exports.
func NewExportDayQueryHandler(loadings LoadingReader) ExportDayQueryHandler {
	return ExportDayQueryHandler{loadings: loadings}
}

// Handle returns one row per loading that reached a terminal status on the
// query's civil date, active rows first, then archived ones.
func (h ExportDayQueryHandler) Handle(
	ctx context.Context,
	query ExportDayQuery,
) ([]ExportDayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active, err := h.loadings.SnapshotLoadings(ctx)
	if err != nil {
		return nil, err
	}
	archived, err := h.loadings.SnapshotArchived(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportDayQueryResponse, 0)
	for _, s := range append(active, archived...) {
		finished := terminalStamp(s)
		if finished == nil || !sameCivilDate(*finished, query.day) {
			continue
		}
		rows = append(rows, toExportRow(s, *finished))
	}
	return rows, nil
}

// terminalStamp returns the time a loading reached its terminal status, or nil
// for non-terminal loadings.
func terminalStamp(s loading.Snapshot) *time.Time {
	switch s.Status {
	case loading.Completed:
		return s.CompletedAt
	case loading.Cancelled:
		return s.CancelledAt
	default:
		return nil
	}
}

func sameCivilDate(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func toExportRow(s loading.Snapshot, finished time.Time) ExportDayQueryResponse {
	row := ExportDayQueryResponse{
		Date:         finished.Local().Format(exportDateLayout),
		Time:         finished.Local().Format(exportTimeLayout),
		Origin:       s.Origin.String(),
		Counterparty: s.Counterparty,
		Reference:    loadingReference(s),
		Route:        s.Route,
		Status:       s.Status.String(),
		EndTime:      finished.Local().Format(exportTimeLayout),
	}
	// The live dock binding is cleared on terminal transitions, so the export
	// names the dock that last served the loading.
	if s.LastDockID != nil {
		row.Dock = strconv.Itoa(*s.LastDockID)
	}
	if s.StartedAt != nil {
		row.StartTime = s.StartedAt.Local().Format(exportTimeLayout)
	}
	return row
}
