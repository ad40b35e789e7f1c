package commands

import (
	"errors"
	"strings"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrScanProductCommandIsNotConstructed = errors.New(
	"ScanProductCommand must be created via NewScanProductCommand constructor",
)

// ScanProductCommand records one scanned product code against an in-progress
// loading's checklist.
type ScanProductCommand struct {
	loadingID kernel.UUID
	code      string
	guard     guard.ConstructorGuard
}

// NewScanProductCommand creates a command to record a scan. The code is
// trimmed; a blank code is rejected up front rather than reported as a
// mismatch.
func NewScanProductCommand(loadingID kernel.UUID, code string) (ScanProductCommand, error) {
	if err := loadingID.Validate(); err != nil {
		return ScanProductCommand{}, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ScanProductCommand{}, errs.NewValueIsRequiredError("code")
	}
	return ScanProductCommand{
		loadingID: loadingID,
		code:      code,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// LoadingID returns the target loading's identifier.
func (c *ScanProductCommand) LoadingID() kernel.UUID {
	return c.loadingID
}

// Code returns the scanned product code.
func (c *ScanProductCommand) Code() string {
	return c.code
}

// Validate ensures the command was created through the constructor.
func (c *ScanProductCommand) Validate() error {
	return c.guard.Validate(ErrScanProductCommandIsNotConstructed)
}
