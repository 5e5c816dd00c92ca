// Package kernel provides core domain primitives shared across the coffee domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A non-negative decimal amount with a fixed two-decimal display form
//
// Both types are immutable and their zero values fail validation, so they must be
// created through their constructors.
package kernel
