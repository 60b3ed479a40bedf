// Package kernel contains the shared value objects of the flowtrack domain:
// identifiers, pipeline areas, placement sources, and collaborator status values.
//
// All types in this package are immutable value objects. Zero values are invalid
// where a constructor exists; use the provided factory functions so that validation
// cannot be bypassed.
package kernel
