package http

import "time"

// Error is the uniform error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductLineRequest is one invoice line of an imported loading request.
type ProductLineRequest struct {
	Code        string `json:"code"        validate:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	ExpectedQty int    `json:"expected_qty" validate:"required,gt=0"`
}

// CreateLoadingRequest enqueues a new loading. Origin selects which field
// group applies: "manual" uses driver/vehicle, "invoice_import" uses the
// invoice fields and product lines.
type CreateLoadingRequest struct {
	Origin   string `json:"origin"   validate:"required,oneof=manual invoice_import"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal high urgent"`

	Driver  string `json:"driver,omitempty"`
	Vehicle string `json:"vehicle,omitempty"`
	Route   string `json:"route,omitempty"`

	InvoiceNumber   string               `json:"invoice_number,omitempty"`
	Counterparty    string               `json:"counterparty,omitempty"`
	DeliveryAddress string               `json:"delivery_address,omitempty"`
	ProductLines    []ProductLineRequest `json:"product_lines,omitempty" validate:"dive"`
}

// StartLoadingRequest binds a loading to a dock. DockID nil means the
// lowest-numbered free dock; Override takes over an occupied requested dock.
type StartLoadingRequest struct {
	DockID   *int `json:"dock_id,omitempty" validate:"omitempty,gte=1"`
	Override bool `json:"override,omitempty"`
}

// StartLoadingResponse reports the bound dock and, after an override, the
// displaced loading.
type StartLoadingResponse struct {
	DockID  int              `json:"dock_id"`
	Warning *ConflictWarning `json:"warning,omitempty"`
}

// ConflictWarning describes a conflict override.
type ConflictWarning struct {
	DockID             int    `json:"dock_id"`
	DisplacedLoadingID string `json:"displaced_loading_id"`
}

// ScanRequest records one scanned product code.
type ScanRequest struct {
	Code string `json:"code" validate:"required"`
}

// ScanResponse reports the matched line's state after a successful scan.
type ScanResponse struct {
	Code              string `json:"code"`
	ScannedQty        int    `json:"scanned_qty"`
	ExpectedQty       int    `json:"expected_qty"`
	LineCompleted     bool   `json:"line_completed"`
	AllLinesCompleted bool   `json:"all_lines_completed"`
}

// ConfirmRequest carries the explicit confirmation destructive bulk
// operations require.
type ConfirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ProductLineResponse is one checklist row.
type ProductLineResponse struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
	ExpectedQty int    `json:"expected_qty"`
	ScannedQty  int    `json:"scanned_qty"`
	Completed   bool   `json:"completed"`
}

// LoadingResponse is the full representation of a loading.
type LoadingResponse struct {
	ID              string                `json:"id"`
	Origin          string                `json:"origin"`
	Status          string                `json:"status"`
	Priority        string                `json:"priority"`
	DockID          *int                  `json:"dock_id,omitempty"`
	Driver          string                `json:"driver,omitempty"`
	Vehicle         string                `json:"vehicle,omitempty"`
	Route           string                `json:"route,omitempty"`
	InvoiceNumber   string                `json:"invoice_number,omitempty"`
	Counterparty    string                `json:"counterparty,omitempty"`
	DeliveryAddress string                `json:"delivery_address,omitempty"`
	ProductLines    []ProductLineResponse `json:"product_lines,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
	StartedAt       *time.Time            `json:"started_at,omitempty"`
	PausedAt        *time.Time            `json:"paused_at,omitempty"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
}

// LoadingSummaryResponse is one row of the loading list.
type LoadingSummaryResponse struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	DockID        *int      `json:"dock_id,omitempty"`
	Driver        string    `json:"driver,omitempty"`
	Vehicle       string    `json:"vehicle,omitempty"`
	Route         string    `json:"route,omitempty"`
	InvoiceNumber string    `json:"invoice_number,omitempty"`
	Counterparty  string    `json:"counterparty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChecklistResponse reports a loading's checklist with its progress.
type ChecklistResponse struct {
	LoadingID     string                `json:"loading_id"`
	InvoiceNumber string                `json:"invoice_number"`
	Lines         []ProductLineResponse `json:"lines"`
	TotalExpected int                   `json:"total_expected"`
	TotalScanned  int                   `json:"total_scanned"`
	AllCompleted  bool                  `json:"all_completed"`
}

// DockResponse is one row of the dock board.
type DockResponse struct {
	DockID        int        `json:"dock_id"`
	Occupied      bool       `json:"occupied"`
	LoadingID     string     `json:"loading_id,omitempty"`
	Reference     string     `json:"reference,omitempty"`
	Route         string     `json:"route,omitempty"`
	OccupiedSince *time.Time `json:"occupied_since,omitempty"`
}

// LongOccupiedResponse flags a dock held past the configured threshold.
type LongOccupiedResponse struct {
	DockID         int       `json:"dock_id"`
	LoadingID      string    `json:"loading_id"`
	OccupiedSince  time.Time `json:"occupied_since"`
	HeldForMinutes int       `json:"held_for_minutes"`
}

// StatsResponse is the aggregated engine view.
type StatsResponse struct {
	Waiting            int                    `json:"waiting"`
	Approved           int                    `json:"approved"`
	InProgress         int                    `json:"in_progress"`
	Completed          int                    `json:"completed"`
	Cancelled          int                    `json:"cancelled"`
	CompletedToday     int                    `json:"completed_today"`
	DocksTotal         int                    `json:"docks_total"`
	DocksOccupied      int                    `json:"docks_occupied"`
	UtilizationPercent int                    `json:"utilization_percent"`
	LongOccupied       []LongOccupiedResponse `json:"long_occupied,omitempty"`
}

// CountResponse reports how many items a bulk operation touched.
type CountResponse struct {
	Count int `json:"count"`
}
