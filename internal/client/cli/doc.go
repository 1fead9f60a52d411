// Package cli provides the interactive StoreHub command-line client.
//
// It wires configuration, the local session store, the HTTP API client and an
// interactive REPL. Typical flow: restore the persisted session on startup,
// then execute user commands against the live service.
//
// Key features:
//   - Login / Logout / Signup with a locally persisted session
//   - Browse, filter and sort the public store list
//   - Submit ratings (normal users)
//   - Owner dashboard with per-store feedback
//   - Admin console: platform counters, user and store management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
