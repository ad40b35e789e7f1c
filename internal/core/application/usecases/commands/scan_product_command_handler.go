package commands

import (
	"context"

	"dockflow/internal/core/domain/model/loading"
)

// ScanProductCommandHandler processes barcode scans against checklists.
type ScanProductCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewScanProductCommandHandler creates a handler for scan operations.
func NewScanProductCommandHandler(uowFactory LoadingUoWFactory) ScanProductCommandHandler {
	return ScanProductCommandHandler{uowFactory: uowFactory}
}

// Handle records a scan against the loading's checklist. A rejected scan is a
// pure failure: the transaction is rolled back and no counter moves.
func (h ScanProductCommandHandler) Handle(
	ctx context.Context,
	command ScanProductCommand,
) (loading.ScanResult, error) {
	if err := command.Validate(); err != nil {
		return loading.ScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return loading.ScanResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadingRepository()
	aggregate, err := repo.Get(ctx, command.loadingID)
	if err != nil {
		return loading.ScanResult{}, err
	}

	result, err := aggregate.Scan(command.code)
	if err != nil {
		return loading.ScanResult{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return loading.ScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return loading.ScanResult{}, err
	}
	return result, nil
}
