package commands

import (
	"errors"

	"dockflow/internal/pkg/guard"
)

var ErrArchiveCompletedCommandIsNotConstructed = errors.New(
	"ArchiveCompletedCommand must be created via NewArchiveCompletedCommand constructor",
)

// ArchiveCompletedCommand moves every completed loading out of the active
// registry. The daily sweep issues it, and operators can trigger it manually.
type ArchiveCompletedCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveCompletedCommand creates an archival command.
func NewArchiveCompletedCommand() (ArchiveCompletedCommand, error) {
	return ArchiveCompletedCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ArchiveCompletedCommand) Validate() error {
	return c.guard.Validate(ErrArchiveCompletedCommandIsNotConstructed)
}
