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
	Signup(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Stores(ctx context.Context) error
	Filter(ctx context.Context, field, substring string) error
	Sort(ctx context.Context, field string) error
	Rate(ctx context.Context, storeID int64, value int) error
	MyStore(ctx context.Context) error
	Dashboard(ctx context.Context, storeID int64) error
	Stats(ctx context.Context) error
	Users(ctx context.Context) error
	AdminStores(ctx context.Context) error
	AddUser(ctx context.Context) error
	AddStore(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the StoreHub CLI.
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
//	  - help                      — show available commands
//	  - signup                    — create an account
//	  - login                     — authenticate
//	  - stores | s                — list stores
//	  - filter <field> [text]     — filter the store list
//	  - sort <field>              — sort the store list (repeat to flip)
//	  - exit | quit               — leave the program
//
//	Logged in (role-dependent commands answer with a denial when not allowed):
//	  - rate <storeID> <1..5>     — rate a store
//	  - profile                   — show the signed-in identity
//	  - passwd                    — change the account password
//	  - mystore                   — show the id of the owned store
//	  - dashboard [storeID]       — owner dashboard (defaults to the owned store)
//	  - stats                     — platform counters
//	  - users                     — admin user list
//	  - astores                   — admin store list
//	  - adduser                   — create a user with a chosen role
//	  - addstore                  — create a store
//	  - logout                    — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("storehub %s> ", statusFn()))
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
				printlnFn("Available commands: (s)tores, filter, sort, rate, profile, passwd, mystore, dashboard, stats, users, astores, adduser, addstore, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, (s)tores, filter, sort, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "s", "stores":
			_ = a.Stores(ctx)

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <field> [text]")
				continue
			}
			_ = a.Filter(ctx, args[0], strings.Join(args[1:], " "))

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <field>")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "rate":
			if len(args) != 2 {
				printlnFn("Usage: rate <storeID> <1..5>")
				continue
			}
			storeID, err1 := strconv.ParseInt(args[0], 10, 64)
			value, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				printlnFn("Usage: rate <storeID> <1..5>")
				continue
			}
			_ = a.Rate(ctx, storeID, value)

		case "mystore":
			_ = a.MyStore(ctx)

		case "dashboard":
			var storeID int64
			if len(args) > 0 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					printlnFn("Usage: dashboard [storeID]")
					continue
				}
				storeID = id
			}
			_ = a.Dashboard(ctx, storeID)

		case "stats":
			_ = a.Stats(ctx)

		case "users":
			_ = a.Users(ctx)

		case "astores":
			_ = a.AdminStores(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "addstore":
			_ = a.AddStore(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
