package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/guard"
)

var ErrRevertLoadingCommandIsNotConstructed = errors.New(
	"RevertLoadingCommand must be created via NewRevertLoadingCommand constructor",
)

// RevertLoadingCommand undoes an approval, sending the loading back to the
// waiting queue.
type RevertLoadingCommand struct {
	loadingID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewRevertLoadingCommand creates a command to revert the given loading.
func NewRevertLoadingCommand(loadingID kernel.UUID) (RevertLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return RevertLoadingCommand{}, err
	}
	return RevertLoadingCommand{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *RevertLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *RevertLoadingCommand) Validate() error {
	return c.guard.Validate(ErrRevertLoadingCommandIsNotConstructed)
}
