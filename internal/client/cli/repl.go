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
	List(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Render(ctx context.Context) error
	SetMode(arg string) error
	SetTemplate(arg string) error
	Fill(ctx context.Context) error
	Preview(ctx context.Context) error
	Submit(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//   - help                            show available commands
//   - list | l                        list the published testimonials
//   - show <n>                        expand entry n from the last listing
//   - render                          print the page markup for the listing
//   - mode <freeform|madlibs>         switch composition mode
//   - template <id>                   pick a fill-in-the-blank template
//   - fill                            enter the testimonial and author fields
//   - preview                         show the composed testimonial
//   - submit                          send it off for review
//   - exit | quit                     leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("kudos %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, show <n>, render, mode <freeform|madlibs>, template <id>, fill, preview, submit, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <n>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "render":
			_ = a.Render(ctx)

		case "mode":
			if len(args) == 0 {
				printlnFn("Usage: mode <freeform|madlibs>")
				continue
			}
			_ = a.SetMode(args[0])

		case "template":
			if len(args) == 0 {
				printlnFn("Usage: template <id>")
				continue
			}
			_ = a.SetTemplate(args[0])

		case "fill":
			_ = a.Fill(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
