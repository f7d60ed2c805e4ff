// Package cli provides the interactive contacts command-line client.
//
// It wires configuration and the HTTP API client into a REPL. Typical flow:
// register or log in, then manage contacts with list, add, edit and delete.
// The session token lives only in memory; logout forgets it.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command set.
package cli
