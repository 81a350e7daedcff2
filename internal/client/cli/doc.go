// Package cli provides the interactive ByteMe command-line client.
//
// It wires configuration, the local database and the session service, then
// runs a REPL over stdin. The session restored from local storage decides
// whether the prompt starts signed in.
//
// Commands:
//   - signup / signin / signout
//   - whoami (requires a session)
//   - rename (requires a session)
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
