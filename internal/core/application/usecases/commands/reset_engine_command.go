package commands

import (
	"errors"

	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrResetEngineCommandIsNotConstructed = errors.New(
	"ResetEngineCommand must be created via NewResetEngineCommand constructor",
)

// ResetEngineCommand wipes the registry, the archive and the dock pool back to
// the initial empty state. Destructive and deliberate.
type ResetEngineCommand struct {
	guard guard.ConstructorGuard
}

// NewResetEngineCommand creates a reset command. The caller must pass an
// explicit confirmation; an unconfirmed request is rejected.
func NewResetEngineCommand(confirmed bool) (ResetEngineCommand, error) {
	if !confirmed {
		return ResetEngineCommand{}, errs.NewValueIsRequiredError("confirmed")
	}
	return ResetEngineCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ResetEngineCommand) Validate() error {
	return c.guard.Validate(ErrResetEngineCommandIsNotConstructed)
}
