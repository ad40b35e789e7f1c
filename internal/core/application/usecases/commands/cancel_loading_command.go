package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/guard"
)

var ErrCancelLoadingCommandIsNotConstructed = errors.New(
	"CancelLoadingCommand must be created via NewCancelLoadingCommand constructor",
)

// CancelLoadingCommand abandons a loading from any non-terminal status.
type CancelLoadingCommand struct {
	loadingID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewCancelLoadingCommand creates a command to cancel the given loading.
func NewCancelLoadingCommand(loadingID kernel.UUID) (CancelLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return CancelLoadingCommand{}, err
	}
	return CancelLoadingCommand{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *CancelLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *CancelLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadingCommandIsNotConstructed)
}
