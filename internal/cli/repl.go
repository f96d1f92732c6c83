package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Resources() error
	Use(name string) error
	List(ctx context.Context) error
	Search(q string) error
	Sort(key string) error
	GoTo(n int) error
	Show(ctx context.Context, id int64) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Download(ctx context.Context, id int64) error
	Ack()
}

// runREPL starts a simple read–eval–print loop for the Pressroom console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - resources        — list selectable resources
//	  - use <resource>   — select a resource
//	  - list | l         — fetch and show the selected collection
//	  - search <text>    — filter the fetched rows (no request)
//	  - sort <column>    — sort by a column, repeat to flip direction
//	  - page <n>         — go to page n
//	  - show <id>        — show a single record
//	  - add              — create a record (interactive form)
//	  - edit <id>        — update a record (interactive form)
//	  - delete <id>      — delete a record (asks for confirmation)
//	  - download <id>    — save the record's attachment locally
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors through the notifier. This keeps the REPL loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pr> %s > ", statusFn()))
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

		// Typing the next command acknowledges the pending error shown in
		// the prompt.
		a.Ack()

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
				continue
			case "login":
				_ = a.Login(ctx)
				continue
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please login first")
				continue
			}
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: resources, use, (l)ist, search, sort, page, show, add, edit, delete, download, logout, exit")

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "resources":
			_ = a.Resources()

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <resource>")
				continue
			}
			_ = a.Use(args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(strings.Join(args, " "))

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <column>")
				continue
			}
			_ = a.Sort(args[0])

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.GoTo(n)

		case "show":
			if id, ok := parseID(args); ok {
				_ = a.Show(ctx, id)
			} else {
				printlnFn("Usage: show <id>")
			}

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if id, ok := parseID(args); ok {
				_ = a.Edit(ctx, id)
			} else {
				printlnFn("Usage: edit <id>")
			}

		case "delete", "del":
			if id, ok := parseID(args); ok {
				_ = a.Delete(ctx, id)
			} else {
				printlnFn("Usage: delete <id>")
			}

		case "download", "dl":
			if id, ok := parseID(args); ok {
				_ = a.Download(ctx, id)
			} else {
				printlnFn("Usage: download <id>")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
