// Package server wires and runs the vault's HTTP server.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown with a bounded drain period.
package server
