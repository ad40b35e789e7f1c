package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/guard"
)

var ErrPauseLoadingCommandIsNotConstructed = errors.New(
	"PauseLoadingCommand must be created via NewPauseLoadingCommand constructor",
)

// PauseLoadingCommand suspends an in-progress loading, freeing its dock while
// keeping the accumulated scan progress.
type PauseLoadingCommand struct {
	loadingID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewPauseLoadingCommand creates a command to pause the given loading.
func NewPauseLoadingCommand(loadingID kernel.UUID) (PauseLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return PauseLoadingCommand{}, err
	}
	return PauseLoadingCommand{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *PauseLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *PauseLoadingCommand) Validate() error {
	return c.guard.Validate(ErrPauseLoadingCommandIsNotConstructed)
}
