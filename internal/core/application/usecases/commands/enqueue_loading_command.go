package commands

import (
	"errors"
	"strings"

	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

var ErrEnqueueLoadingCommandIsNotConstructed = errors.New(
	"EnqueueLoadingCommand must be created via NewEnqueueManualLoadingCommand or NewEnqueueImportedLoadingCommand",
)

// ProductLineInput carries one invoice line supplied by the import collaborator.
type ProductLineInput struct {
	Code        string
	Description string
	Unit        string
	ExpectedQty int
}

// EnqueueLoadingCommand creates a new loading request in the Waiting queue.
// The command is origin-tagged: manual requests carry driver/vehicle/route,
// imported requests carry the invoice snapshot with its product lines.
type EnqueueLoadingCommand struct {
	origin   loading.Origin
	priority loading.Priority

	driver  string
	vehicle string
	route   string

	invoiceNumber   string
	counterparty    string
	deliveryAddress string
	lines           []ProductLineInput

	guard guard.ConstructorGuard
}

// NewEnqueueManualLoadingCommand creates a command for an operator-submitted
// loading. Driver, vehicle and route are required.
func NewEnqueueManualLoadingCommand(
	driver, vehicle, route string,
	priority loading.Priority,
) (EnqueueLoadingCommand, error) {
	if strings.TrimSpace(driver) == "" {
		return EnqueueLoadingCommand{}, errs.NewValueIsRequiredError("driver")
	}
	if strings.TrimSpace(vehicle) == "" {
		return EnqueueLoadingCommand{}, errs.NewValueIsRequiredError("vehicle")
	}
	if strings.TrimSpace(route) == "" {
		return EnqueueLoadingCommand{}, errs.NewValueIsRequiredError("route")
	}
	if err := priority.Validate(); err != nil {
		return EnqueueLoadingCommand{}, err
	}

	return EnqueueLoadingCommand{
		origin:   loading.OriginManual,
		priority: priority,
		driver:   driver,
		vehicle:  vehicle,
		route:    route,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewEnqueueImportedLoadingCommand creates a command for an invoice-derived
// loading. The invoice number and at least one product line are required.
func NewEnqueueImportedLoadingCommand(
	invoiceNumber, counterparty, deliveryAddress, route string,
	priority loading.Priority,
	lines []ProductLineInput,
) (EnqueueLoadingCommand, error) {
	if strings.TrimSpace(invoiceNumber) == "" {
		return EnqueueLoadingCommand{}, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if len(lines) == 0 {
		return EnqueueLoadingCommand{}, errs.NewValueIsRequiredError("productLines")
	}
	if err := priority.Validate(); err != nil {
		return EnqueueLoadingCommand{}, err
	}

	return EnqueueLoadingCommand{
		origin:          loading.OriginInvoiceImport,
		priority:        priority,
		invoiceNumber:   invoiceNumber,
		counterparty:    counterparty,
		deliveryAddress: deliveryAddress,
		route:           route,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Origin returns the command's origin tag.
func (c *EnqueueLoadingCommand) Origin() loading.Origin {
	return c.origin
}

// Validate ensures the command was created through a constructor.
func (c *EnqueueLoadingCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueLoadingCommandIsNotConstructed)
}
