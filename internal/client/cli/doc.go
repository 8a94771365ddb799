// Package cli provides the interactive ApplyLine command-line client.
//
// It wires configuration, local storage, the API gateway, the session
// manager, and an interactive REPL. Typical flow: restore the previous
// session from the local database, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout
//   - Build a recipient list and send a batch of applications
//   - View send history
//   - View and edit the user profile
//   - Personalize the cover letter against a pasted job description
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
