// Package cli provides the interactive firstweek command-line client.
//
// It wires configuration, the gRPC client and a read–eval–print loop that
// manages members on the server:
//
//   - list            show all members
//   - add             create a member (prompts for name and email)
//   - get <id>        show one member
//   - delete <id>     remove a member
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
