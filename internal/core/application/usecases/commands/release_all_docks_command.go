package commands

import (
	"errors"

	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrReleaseAllDocksCommandIsNotConstructed = errors.New(
	"ReleaseAllDocksCommand must be created via NewReleaseAllDocksCommand constructor",
)

// ReleaseAllDocksCommand frees the whole dock pool in one confirmed operation,
// typically at end of shift.
type ReleaseAllDocksCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseAllDocksCommand creates a bulk-release command. The caller must
// pass an explicit confirmation; an unconfirmed request is rejected.
func NewReleaseAllDocksCommand(confirmed bool) (ReleaseAllDocksCommand, error) {
	if !confirmed {
		return ReleaseAllDocksCommand{}, errs.NewValueIsRequiredError("confirmed")
	}
	return ReleaseAllDocksCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ReleaseAllDocksCommand) Validate() error {
	return c.guard.Validate(ErrReleaseAllDocksCommandIsNotConstructed)
}
