// Package cli provides the interactive dashboard client.
//
// It wires configuration, the key-value store, the session service and the
// table engine into a REPL. Typical flow: sign up or log in, then browse the
// records table with search, sort and paging commands.
//
// Key features:
//   - Signup / Login / Logout / Delete account
//   - Table view with search, three-state column sort and paging
//   - Export of the current filtered view as JSON or YAML
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartSessionWatcher, and runREPL for details.
package cli
