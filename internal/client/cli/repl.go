package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Get(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const helpText = "Available commands: (l)ist, add, get <id>, delete <id>, help, exit\n"

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Errors from
// command handlers are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer, showPrompt bool) {
	for {
		if showPrompt {
			printf(w, "members> ")
		}

		line, err := readLine(reader)
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printf(w, helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "get":
			_ = a.Get(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printf(w, "Bye!\n")
			return

		default:
			printf(w, "Unknown command: %s\n", cmd)
		}
	}
}
