package queries

import (
	"context"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
)

// GetChecklistQueryHandler serves the per-loading checklist view.
type GetChecklistQueryHandler struct {
	loadings LoadingReader
}

// NewGetChecklistQueryHandler creates a handler for checklist queries.
func NewGetChecklistQueryHandler(loadings LoadingReader) GetChecklistQueryHandler {
	return GetChecklistQueryHandler{loadings: loadings}
}

// Handle returns the loading's checklist with per-line and overall progress.
// Manual loadings carry no checklist and are reported as not applicable.
func (h GetChecklistQueryHandler) Handle(
	ctx context.Context,
	query GetChecklistQuery,
) (GetChecklistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetChecklistQueryResponse{}, err
	}

	snapshot, err := h.loadings.SnapshotLoading(ctx, query.loadingID)
	if err != nil {
		return GetChecklistQueryResponse{}, err
	}

	if snapshot.Origin != loading.OriginInvoiceImport {
		return GetChecklistQueryResponse{}, errs.NewNotApplicableError(
			"checklist", "loading has no product lines")
	}

	response := GetChecklistQueryResponse{
		LoadingID:     snapshot.ID,
		InvoiceNumber: snapshot.InvoiceNumber,
		Lines:         make([]ChecklistLine, 0, len(snapshot.ProductLines)),
		AllCompleted:  true,
	}
	for _, line := range snapshot.ProductLines {
		response.Lines = append(response.Lines, ChecklistLine{
			Code:        line.Code,
			Description: line.Description,
			Unit:        line.Unit,
			ExpectedQty: line.ExpectedQty,
			ScannedQty:  line.ScannedQty,
			Completed:   line.Completed,
		})
		response.TotalExpected += line.ExpectedQty
		response.TotalScanned += line.ScannedQty
		if !line.Completed {
			response.AllCompleted = false
		}
	}
	return response, nil
}
