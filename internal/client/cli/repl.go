package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Create(ctx context.Context) error
	Show(ctx context.Context, id string) error
	List(ctx context.Context) error
	Drain(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the draft client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help           — show available commands
//	create         — author a new draft (prompts for type and fields)
//	show <id>      — display one record with its provenance
//	list           — list local drafts and their sync states
//	drain          — replay pending drafts against the server
//	exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("espj> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: create, show <id>, list, drain, exit")
		case "create":
			_ = a.Create(ctx)
		case "show":
			if len(parts) < 2 {
				printlnFn("usage: show <id>")
				continue
			}
			_ = a.Show(ctx, parts[1])
		case "list":
			_ = a.List(ctx)
		case "drain":
			_ = a.Drain(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("unknown command: %s", cmd))
		}
	}
}
