package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
)

// EnqueueLoadingCommandHandler creates loadings in the Waiting queue.
// The aggregate constructor performs the authoritative validation of the
// origin-specific fields; a failed construction leaves the registry untouched.
type EnqueueLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewEnqueueLoadingCommandHandler creates a handler for enqueue operations.
func NewEnqueueLoadingCommandHandler(uowFactory LoadingUoWFactory) EnqueueLoadingCommandHandler {
	return EnqueueLoadingCommandHandler{uowFactory: uowFactory}
}

// Handle creates the loading and returns a snapshot of it.
func (h EnqueueLoadingCommandHandler) Handle(
	ctx context.Context,
	command EnqueueLoadingCommand,
) (loading.Snapshot, error) {
	if err := command.Validate(); err != nil {
		return loading.Snapshot{}, err
	}

	aggregate, err := buildLoading(command, kernel.NewUUID(), time.Now())
	if err != nil {
		return loading.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return loading.Snapshot{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadingRepository().Add(ctx, aggregate); err != nil {
		return loading.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return loading.Snapshot{}, err
	}

	return aggregate.Snapshot(), nil
}

func buildLoading(command EnqueueLoadingCommand, id kernel.UUID, now time.Time) (*loading.Loading, error) {
	if command.origin == loading.OriginManual {
		return loading.NewManualLoading(
			id, command.driver, command.vehicle, command.route, command.priority, now)
	}

	lines := make([]*loading.ProductLine, 0, len(command.lines))
	for _, input := range command.lines {
		line, err := loading.NewProductLine(input.Code, input.Description, input.Unit, input.ExpectedQty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return loading.NewImportedLoading(
		id, command.invoiceNumber, command.counterparty, command.deliveryAddress,
		command.route, command.priority, lines, now)
}
