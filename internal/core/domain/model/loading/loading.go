package loading

import (
	"errors"
	"strings"
	"time"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

// ErrLoadingIsNotConstructed is returned when a Loading instance was not created
// through one of the factory methods.
var ErrLoadingIsNotConstructed = errors.New(
	"Loading must be created via NewManualLoading or NewImportedLoading")

// Loading represents a request to load a vehicle at a dock. It is the aggregate
// root that owns the lifecycle state machine and, for invoice-imported loadings,
// the product-line checklist reconciled against physical scans.
//
// Loading maintains these invariants:
//   - dockID is non-nil only while status == InProgress
//   - each lifecycle timestamp is set once, on its transition, never cleared
//   - manual loadings have no product lines; scans on them are rejected
//   - for every product line, 0 <= scannedQty <= expectedQty at all times
type Loading struct {
	// id is the unique identifier, assigned at creation, immutable
	id kernel.UUID

	// origin tags the loading as manual or invoice-imported
	origin Origin

	// status is the current lifecycle state
	status Status

	// priority is a display ordering hint, irrelevant to transitions
	priority Priority

	// dockID is the bound dock's pool position while the loading is in progress
	dockID *int

	// lastDockID keeps the most recent dock binding for reporting after the
	// live binding is cleared
	lastDockID *int

	// driver and vehicle identify the manual request; route is shared by both origins
	driver  string
	vehicle string
	route   string

	// invoice fields, present only for imported loadings
	invoiceNumber   string
	counterparty    string
	deliveryAddress string

	// productLines is the invoice checklist, in invoice registration order
	productLines []*ProductLine

	createdAt   time.Time
	approvedAt  *time.Time
	startedAt   *time.Time
	pausedAt    *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewManualLoading creates an operator-submitted loading in Waiting status.
// Driver, vehicle and route are required; manual loadings carry no checklist.
func NewManualLoading(
	id kernel.UUID,
	driver, vehicle, route string,
	priority Priority,
	createdAt time.Time,
) (*Loading, error) {
	l := &Loading{
		origin:    OriginManual,
		status:    Waiting,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setPriority(priority),
		requireField("driver", driver),
		requireField("vehicle", vehicle),
		requireField("route", route),
	); err != nil {
		return nil, err
	}

	l.driver = driver
	l.vehicle = vehicle
	l.route = route
	return l, nil
}

// NewImportedLoading creates an invoice-derived loading in Waiting status.
// The invoice number and at least one product line are required; the checklist
// starts with zero scan progress.
func NewImportedLoading(
	id kernel.UUID,
	invoiceNumber, counterparty, deliveryAddress, route string,
	priority Priority,
	lines []*ProductLine,
	createdAt time.Time,
) (*Loading, error) {
	l := &Loading{
		origin:    OriginInvoiceImport,
		status:    Waiting,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setPriority(priority),
		requireField("invoiceNumber", invoiceNumber),
		l.setProductLines(lines),
	); err != nil {
		return nil, err
	}

	l.invoiceNumber = invoiceNumber
	l.counterparty = counterparty
	l.deliveryAddress = deliveryAddress
	l.route = route
	return l, nil
}

// Validate ensures the Loading was created through one of the factory methods.
func (l *Loading) Validate() error {
	if l == nil {
		return ErrLoadingIsNotConstructed
	}
	return l.guard.Validate(ErrLoadingIsNotConstructed)
}

// ID returns the loading's unique identifier.
func (l *Loading) ID() kernel.UUID {
	return l.id
}

// Origin returns the loading's origin tag.
func (l *Loading) Origin() Origin {
	return l.origin
}

// Status returns the current lifecycle state.
func (l *Loading) Status() Status {
	return l.status
}

// Priority returns the display ordering hint.
func (l *Loading) Priority() Priority {
	return l.priority
}

// DockID returns the bound dock's pool position, or nil when no dock is bound.
func (l *Loading) DockID() *int {
	if l.dockID == nil {
		return nil
	}
	id := *l.dockID
	return &id
}

// LastDockID returns the dock that most recently served the loading, or nil
// when it was never started. Unlike DockID, it survives pause and terminal
// transitions.
func (l *Loading) LastDockID() *int {
	if l.lastDockID == nil {
		return nil
	}
	id := *l.lastDockID
	return &id
}

// Driver returns the driver name (manual origin).
func (l *Loading) Driver() string { return l.driver }

// Vehicle returns the vehicle plate (manual origin).
func (l *Loading) Vehicle() string { return l.vehicle }

// Route returns the delivery-region route descriptor.
func (l *Loading) Route() string { return l.route }

// InvoiceNumber returns the source invoice reference (imported origin).
func (l *Loading) InvoiceNumber() string { return l.invoiceNumber }

// Counterparty returns the invoice counterparty name (imported origin).
func (l *Loading) Counterparty() string { return l.counterparty }

// DeliveryAddress returns the invoice delivery address (imported origin).
func (l *Loading) DeliveryAddress() string { return l.deliveryAddress }

// ProductLines returns the checklist entities in registration order.
// The slice is a copy; the line entities are the aggregate's own.
func (l *Loading) ProductLines() []*ProductLine {
	lines := make([]*ProductLine, len(l.productLines))
	copy(lines, l.productLines)
	return lines
}

// CreatedAt returns the enqueue time.
func (l *Loading) CreatedAt() time.Time { return l.createdAt }

// ApprovedAt returns the first approval time, or nil.
func (l *Loading) ApprovedAt() *time.Time { return copyTime(l.approvedAt) }

// StartedAt returns the first dock-binding time, or nil.
func (l *Loading) StartedAt() *time.Time { return copyTime(l.startedAt) }

// PausedAt returns the first pause time, or nil.
func (l *Loading) PausedAt() *time.Time { return copyTime(l.pausedAt) }

// CompletedAt returns the completion time, or nil.
func (l *Loading) CompletedAt() *time.Time { return copyTime(l.completedAt) }

// CancelledAt returns the cancellation time, or nil.
func (l *Loading) CancelledAt() *time.Time { return copyTime(l.cancelledAt) }

// Approve transitions Waiting -> Approved and records the approval time.
func (l *Loading) Approve(at time.Time) error {
	newStatus, err := l.status.Approve()
	if err != nil {
		return err
	}
	l.status = newStatus
	l.stampOnce(&l.approvedAt, at)
	return nil
}

// RevertToWaiting transitions Approved -> Waiting, undoing an approval.
// The approval timestamp is kept; timestamps are never retroactively cleared.
func (l *Loading) RevertToWaiting() error {
	newStatus, err := l.status.Revert()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// Start transitions Approved -> InProgress, binding the loading to the given dock
// and recording the start time. The caller (the dock allocator) is responsible
// for the matching dock-pool bookkeeping.
func (l *Loading) Start(dockID int, at time.Time) error {
	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}
	l.status = newStatus
	l.dockID = &dockID
	l.lastDockID = &dockID
	l.stampOnce(&l.startedAt, at)
	return nil
}

// Pause transitions InProgress -> Approved, clearing the dock binding and
// recording the pause time. Scan progress on product lines is preserved.
func (l *Loading) Pause(at time.Time) error {
	newStatus, err := l.status.Pause()
	if err != nil {
		return err
	}
	l.status = newStatus
	l.dockID = nil
	l.stampOnce(&l.pausedAt, at)
	return nil
}

// Complete transitions InProgress -> Completed, clearing the dock binding and
// recording the completion time.
func (l *Loading) Complete(at time.Time) error {
	newStatus, err := l.status.Complete()
	if err != nil {
		return err
	}
	l.status = newStatus
	l.dockID = nil
	l.stampOnce(&l.completedAt, at)
	return nil
}

// Cancel transitions any non-terminal status -> Cancelled, clearing any dock
// binding and recording the cancellation time.
func (l *Loading) Cancel(at time.Time) error {
	newStatus, err := l.status.Cancel()
	if err != nil {
		return err
	}
	l.status = newStatus
	l.dockID = nil
	l.stampOnce(&l.cancelledAt, at)
	return nil
}

// ScanResult reports the outcome of a successful scan.
type ScanResult struct {
	// Line is the matched line's state after the scan was recorded.
	Line ProductLineSnapshot

	// LineCompleted is true when this scan brought the line to its expected quantity.
	LineCompleted bool

	// AllLinesCompleted is true when this scan completed the last open line.
	// It is advisory: the caller decides whether to complete the loading.
	AllLinesCompleted bool
}

// Scan reconciles a scanned code against the checklist.
//
// The match policy tries exact code equality first, then falls back to
// bidirectional substring containment; within each pass the first line in
// registration order wins. Failures are pure rejections with no mutation:
//   - not-found error, naming the blocking status, when the loading is not in progress
//   - not-applicable error for manual loadings
//   - scan-mismatch "code not found" when no line relates to the code
//   - scan-mismatch "already complete" when the matched line is fully scanned
func (l *Loading) Scan(code string) (ScanResult, error) {
	if l.status != InProgress {
		return ScanResult{}, errs.NewObjectNotFoundErrorWithCause(
			"loading in InProgress status", l.id.String(),
			errs.NewInvalidTransitionError("scan", l.status.String()))
	}
	if l.origin != OriginInvoiceImport {
		return ScanResult{}, errs.NewNotApplicableError("scan", "loading has no product lines")
	}

	line := l.matchLine(code)
	if line == nil {
		return ScanResult{}, errs.NewScanMismatchError(code, errs.ScanReasonCodeNotFound)
	}

	if err := line.RecordScan(); err != nil {
		return ScanResult{}, err
	}

	return ScanResult{
		Line:              line.Snapshot(),
		LineCompleted:     line.Completed(),
		AllLinesCompleted: line.Completed() && l.AllLinesCompleted(),
	}, nil
}

// AllLinesCompleted reports whether every product line is fully scanned.
// Always false for manual loadings.
func (l *Loading) AllLinesCompleted() bool {
	if len(l.productLines) == 0 {
		return false
	}
	for _, line := range l.productLines {
		if !line.Completed() {
			return false
		}
	}
	return true
}

// MatchesText reports whether the free-text query matches any of the loading's
// searchable fields (driver, vehicle, route, invoice number, counterparty) by
// case-insensitive substring. An empty query matches everything.
func (l *Loading) MatchesText(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{l.driver, l.vehicle, l.route, l.invoiceNumber, l.counterparty} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchLine implements the documented scan match policy: an exact-code pass over
// the lines in registration order, then a loose bidirectional-substring pass.
// Returns nil when no line relates to the code.
func (l *Loading) matchLine(code string) *ProductLine {
	for _, line := range l.productLines {
		if line.MatchesExactly(code) {
			return line
		}
	}
	for _, line := range l.productLines {
		if line.MatchesLoosely(code) {
			return line
		}
	}
	return nil
}

func (l *Loading) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Loading) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	l.priority = priority
	return nil
}

func (l *Loading) setProductLines(lines []*ProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("productLines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	l.productLines = make([]*ProductLine, len(lines))
	copy(l.productLines, lines)
	return nil
}

// stampOnce sets a lifecycle timestamp only on its first transition.
func (l *Loading) stampOnce(ts **time.Time, at time.Time) {
	if *ts == nil {
		*ts = &at
	}
}

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func copyTime(ts *time.Time) *time.Time {
	if ts == nil {
		return nil
	}
	t := *ts
	return &t
}

// Snapshot is an immutable view of a loading for read-side consumers.
type Snapshot struct {
	ID              string
	Origin          Origin
	Status          Status
	Priority        Priority
	DockID          *int
	LastDockID      *int
	Driver          string
	Vehicle         string
	Route           string
	InvoiceNumber   string
	Counterparty    string
	DeliveryAddress string
	ProductLines    []ProductLineSnapshot
	CreatedAt       time.Time
	ApprovedAt      *time.Time
	StartedAt       *time.Time
	PausedAt        *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
}

// Snapshot returns a copy of the loading's observable state.
func (l *Loading) Snapshot() Snapshot {
	s := Snapshot{
		ID:              l.id.String(),
		Origin:          l.origin,
		Status:          l.status,
		Priority:        l.priority,
		DockID:          l.DockID(),
		LastDockID:      l.LastDockID(),
		Driver:          l.driver,
		Vehicle:         l.vehicle,
		Route:           l.route,
		InvoiceNumber:   l.invoiceNumber,
		Counterparty:    l.counterparty,
		DeliveryAddress: l.deliveryAddress,
		CreatedAt:       l.createdAt,
		ApprovedAt:      copyTime(l.approvedAt),
		StartedAt:       copyTime(l.startedAt),
		PausedAt:        copyTime(l.pausedAt),
		CompletedAt:     copyTime(l.completedAt),
		CancelledAt:     copyTime(l.cancelledAt),
	}
	if len(l.productLines) > 0 {
		s.ProductLines = make([]ProductLineSnapshot, len(l.productLines))
		for i, line := range l.productLines {
			s.ProductLines[i] = line.Snapshot()
		}
	}
	return s
}
