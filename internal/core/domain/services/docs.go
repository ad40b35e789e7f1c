// Package services contains stateless domain services that coordinate multiple
// aggregates: the DockAllocator binds loadings to docks under the
// single-occupancy rule.
package services
