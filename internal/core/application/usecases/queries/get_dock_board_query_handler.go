package queries

import (
	"context"
	"errors"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
)

// GetDockBoardQueryHandler serves the dock occupancy board.
type GetDockBoardQueryHandler struct {
	loadings LoadingReader
	docks    DockReader
}

// NewGetDockBoardQueryHandler creates a handler for dock board queries.
func NewGetDockBoardQueryHandler(loadings LoadingReader, docks DockReader) GetDockBoardQueryHandler {
	return GetDockBoardQueryHandler{loadings: loadings, docks: docks}
}

// Handle returns one row per dock, ordered by pool position, with the
// occupant's reference data resolved from the registry.
func (h GetDockBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDockBoardQuery,
) ([]GetDockBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	docks, err := h.docks.SnapshotDocks(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]GetDockBoardQueryResponse, 0, len(docks))
	for _, d := range docks {
		row := GetDockBoardQueryResponse{
			DockID:        d.ID,
			Occupied:      d.Occupied,
			LoadingID:     d.OccupantLoadingID,
			OccupiedSince: d.OccupiedSince,
		}

		if d.Occupied {
			occupant, lookupErr := h.loadings.SnapshotLoading(ctx, d.OccupantLoadingID)
			switch {
			case lookupErr == nil:
				row.Reference = loadingReference(occupant)
				row.Route = occupant.Route
			case errors.Is(lookupErr, errs.ErrObjectNotFound):
				// An override can leave a dock pointing at a displaced loading
				// that was since archived; show the bare id.
			default:
				return nil, lookupErr
			}
		}
		board = append(board, row)
	}
	return board, nil
}

// loadingReference picks the operator-facing identifier of a loading:
// the vehicle plate for manual loadings, the invoice number otherwise.
func loadingReference(s loading.Snapshot) string {
	if s.Origin == loading.OriginManual {
		return s.Vehicle
	}
	return s.InvoiceNumber
}
