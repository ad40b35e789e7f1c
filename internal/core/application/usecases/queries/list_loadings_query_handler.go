package queries

import (
	"context"
	"strings"

	"dockflow/internal/core/domain/model/loading"
)

// ListLoadingsQueryHandler serves the loading list views.
type ListLoadingsQueryHandler struct {
	loadings LoadingReader
}

// NewListLoadingsQueryHandler creates a handler for listing queries.
func NewListLoadingsQueryHandler(loadings LoadingReader) ListLoadingsQueryHandler {
	return ListLoadingsQueryHandler{loadings: loadings}
}

// Handle returns the active loadings matching the query's filters, in
// registration order.
func (h ListLoadingsQueryHandler) Handle(
	ctx context.Context,
	query ListLoadingsQuery,
) ([]ListLoadingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := h.loadings.SnapshotLoadings(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ListLoadingsQueryResponse, 0, len(snapshots))
	for _, s := range snapshots {
		if query.status != nil && s.Status != *query.status {
			continue
		}
		if query.text != "" && !matchesText(s, query.text) {
			continue
		}
		responses = append(responses, toListResponse(s))
	}
	return responses, nil
}

// matchesText reports whether the needle appears, case-insensitively, in any
// of the loading's searchable text fields.
func matchesText(s loading.Snapshot, needle string) bool {
	needle = strings.ToLower(needle)
	for _, field := range []string{s.Driver, s.Vehicle, s.Route, s.InvoiceNumber, s.Counterparty} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func toListResponse(s loading.Snapshot) ListLoadingsQueryResponse {
	return ListLoadingsQueryResponse{
		ID:            s.ID,
		Origin:        s.Origin.String(),
		Status:        s.Status.String(),
		Priority:      s.Priority.String(),
		DockID:        s.DockID,
		Driver:        s.Driver,
		Vehicle:       s.Vehicle,
		Route:         s.Route,
		InvoiceNumber: s.InvoiceNumber,
		Counterparty:  s.Counterparty,
		CreatedAt:     s.CreatedAt,
	}
}
