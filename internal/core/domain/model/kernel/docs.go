// Package kernel contains shared value objects used across the domain model.
// It currently provides the UUID identity type used by loading aggregates.
package kernel
