package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrStartLoadingCommandIsNotConstructed = errors.New(
	"StartLoadingCommand must be created via NewStartLoadingCommand constructor",
)

// StartLoadingCommand binds an approved loading to a dock and starts it.
// A nil requested dock means "lowest-numbered free dock". The override flag is
// the deliberate manual affordance for taking over an occupied requested dock.
type StartLoadingCommand struct {
	loadingID       kernel.UUID
	requestedDockID *int
	override        bool
	guard           guard.ConstructorGuard
}

// NewStartLoadingCommand creates a command to start the given loading.
// Override without a requested dock is meaningless and rejected.
func NewStartLoadingCommand(loadingID kernel.UUID, requestedDockID *int, override bool) (StartLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return StartLoadingCommand{}, err
	}
	if requestedDockID == nil && override {
		return StartLoadingCommand{}, errs.NewValueIsInvalidError("override requires a requested dock")
	}
	if requestedDockID != nil && *requestedDockID < 1 {
		return StartLoadingCommand{}, errs.NewValueIsInvalidError("requestedDockID")
	}

	var requested *int
	if requestedDockID != nil {
		id := *requestedDockID
		requested = &id
	}
	return StartLoadingCommand{
		loadingID:       loadingID,
		requestedDockID: requested,
		override:        override,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *StartLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *StartLoadingCommand) Validate() error {
	return c.guard.Validate(ErrStartLoadingCommandIsNotConstructed)
}
