package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/guard"
)

var ErrCompleteLoadingCommandIsNotConstructed = errors.New(
	"CompleteLoadingCommand must be created via NewCompleteLoadingCommand constructor",
)

// CompleteLoadingCommand finishes an in-progress loading. Completion is always
// allowed regardless of checklist progress; remaining lines are the operator's
// call.
type CompleteLoadingCommand struct {
	loadingID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewCompleteLoadingCommand creates a command to complete the given loading.
func NewCompleteLoadingCommand(loadingID kernel.UUID) (CompleteLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return CompleteLoadingCommand{}, err
	}
	return CompleteLoadingCommand{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *CompleteLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *CompleteLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLoadingCommandIsNotConstructed)
}
