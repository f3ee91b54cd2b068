// Package cli provides the interactive fittrack command-line client.
//
// It wires configuration, local storage, HTTP gateways, and an interactive
// REPL over the session, catalog, favourites, and theme services. Typical
// flow: restore a persisted session, load favourites and the theme
// preference, resolve the starting screen, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (local accounts with a remote fallback)
//   - Browse the exercise catalog by muscle group, mixed, or by name
//   - Mark and unmark favourite exercises
//   - Switch the colour-scheme preference
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
