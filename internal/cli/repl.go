package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL output. In tests, replace
// them with stubs.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Whoami(ctx context.Context) error

	ShowTable() error
	Search(args []string) error
	Sort(args []string) error
	Page(args []string) error
	Next() error
	Prev() error
	First() error
	Last() error
	Size(args []string) error
	Export(args []string) error
}

const (
	guestHelp = "Available commands: signup, login, help, exit"
	userHelp  = "Available commands: (t)able, search <term>, sort <column> [asc|desc|none], " +
		"page <n>, next, prev, first, last, size <5|10|20|50>, export <file.json|file.yaml>, " +
		"whoami, logout, delete-account, help, exit"
)

// runREPL starts the read-eval-print loop of the dashboard.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               - show available commands
//	  - signup | register  - create an account
//	  - login              - authenticate
//	  - exit | quit        - leave the program
//
//	Logged in:
//	  - table | t          - show the current page
//	  - search [term...]   - filter rows; no term clears the filter
//	  - sort <column>      - cycle asc, desc, unsorted on a column
//	  - page <n>, next, prev, first, last
//	  - size <n>           - rows per page
//	  - export <file>      - save the filtered rows as JSON or YAML
//	  - whoami, logout, delete-account
//
// Table commands typed while logged out are refused with a hint to log in.
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("dash (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first (use 'login' or 'signup')")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "t", "table":
			_ = a.ShowTable()

		case "search":
			_ = a.Search(args)

		case "sort":
			_ = a.Sort(args)

		case "page":
			_ = a.Page(args)

		case "next":
			_ = a.Next()

		case "prev":
			_ = a.Prev()

		case "first":
			_ = a.First()

		case "last":
			_ = a.Last()

		case "size":
			_ = a.Size(args)

		case "export":
			_ = a.Export(args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "t", "table", "search", "sort", "page", "next", "prev", "first", "last", "size", "export",
		"logout", "delete-account":
		return true
	}
	return false
}
