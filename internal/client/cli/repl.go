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
	Ask(ctx context.Context) error
	Search(ctx context.Context) error
	Book(ctx context.Context, flightID string) error
	MyFlights(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FlyZone CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Not logged in:
//   - help           — show available commands
//   - register       — create an account
//   - login          — authenticate
//   - exit | quit    — leave the program
//
// Logged in:
//   - help           — show available commands
//   - ask            — ask the travel agent a question
//   - search         — search for flights
//   - book <id>      — book a flight by id
//   - flights        — list your bookings
//   - whoami         — show the signed-in user
//   - logout         — log out
//   - exit | quit    — leave the program
//
// Any errors returned by command handlers are surfaced here as a single
// line; handlers otherwise own their interaction. The loop never aborts on
// a command failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("flyzone %s> ", statusFn()))
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

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ask, search, book <id>, flights, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "ask":
			err = a.Ask(ctx)

		case "search":
			err = a.Search(ctx)

		case "book":
			if len(args) == 0 {
				printlnFn("Usage: book <flight-id>")
				continue
			}
			err = a.Book(ctx, args[0])

		case "f", "flights":
			err = a.MyFlights(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
