package cmd

import "time"

// Config carries the runtime settings of the engine. Values come from the
// environment; defaults live in the loader, not here.
type Config struct {
	HTTPPort string

	// DockCount is the size of the fixed dock pool.
	DockCount int

	// ArchiveHour and ArchiveMinute set the local wall-clock time of the
	// nightly archive sweep.
	ArchiveHour   int
	ArchiveMinute int

	// LongOccupiedThreshold marks docks held longer than this in the stats.
	LongOccupiedThreshold time.Duration
}
