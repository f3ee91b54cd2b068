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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, muscle string) error
	Mixed(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Favourites(ctx context.Context, args []string) error
	Theme(ctx context.Context, mode string) error
	ToggleTheme(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the fittrack CLI.
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
//	  - register         — create an account
//	  - login            — authenticate
//	  - theme | toggle   — view or change the colour scheme
//	  - ping             — check connectivity to the auth service
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - list [muscle]    — list exercises for a muscle group
//	  - mixed            — list a mixed sample across muscle groups
//	  - search <query>   — search exercises by name
//	  - show <id>        — show a single exercise
//	  - fav [add|rm <id>]— list or edit favourites
//	  - whoami           — show the current profile
//	  - theme | toggle   — view or change the colour scheme
//	  - ping             — check connectivity to the auth service
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ft> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [muscle], mixed, search <query>, show <id>, fav [add|rm <id>], whoami, theme, toggle, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, theme, toggle, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			muscle := ""
			if len(args) > 0 {
				muscle = args[0]
			}
			_ = a.List(ctx, muscle)

		case "mixed":
			_ = a.Mixed(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "fav":
			_ = a.Favourites(ctx, args)

		case "theme":
			mode := ""
			if len(args) > 0 {
				mode = args[0]
			}
			_ = a.Theme(ctx, mode)

		case "toggle":
			_ = a.ToggleTheme(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
