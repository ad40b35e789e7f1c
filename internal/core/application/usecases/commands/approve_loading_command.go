package commands

import (
	"errors"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/guard"
)

var ErrApproveLoadingCommandIsNotConstructed = errors.New(
	"ApproveLoadingCommand must be created via NewApproveLoadingCommand constructor",
)

// ApproveLoadingCommand moves a waiting loading into the approved queue,
// making it eligible for dock assignment.
type ApproveLoadingCommand struct {
	loadingID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewApproveLoadingCommand creates a command to approve the given loading.
func NewApproveLoadingCommand(loadingID kernel.UUID) (ApproveLoadingCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return ApproveLoadingCommand{}, err
	}
	return ApproveLoadingCommand{
		loadingID: loadingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *ApproveLoadingCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Validate ensures the command was created through the constructor.
func (c *ApproveLoadingCommand) Validate() error {
	return c.guard.Validate(ErrApproveLoadingCommandIsNotConstructed)
}
