// Package queries contains read operations for the coffee menu.
// Queries return read models built for a specific use case and never change state.
package queries
