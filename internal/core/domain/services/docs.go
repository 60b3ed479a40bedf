// Package services contains stateless domain services operating across
// aggregates. Services here are pure: they read aggregates and value objects
// and produce results without mutating their inputs.
package services
