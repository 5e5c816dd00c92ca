// Package commands contains the business operations of the coffee application.
// Each command is created through a validating constructor and executed by its handler.
package commands
