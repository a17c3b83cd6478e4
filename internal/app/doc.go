// Package app wires application dependencies for the CLI.
//
// Config holds the merged flag and environment values. It is converted into
// an immutable domain.SearchConfig before any search work starts, so core
// packages never read process-wide state. NewWire builds the concrete logger,
// oracle and result store, and App exposes the operations behind each command.
package app
