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
	AddRecipient(ctx context.Context) error
	RemoveRecipient(ctx context.Context, args []string) error
	ShowRecipients(ctx context.Context) error
	SetSubject(ctx context.Context) error
	Send(ctx context.Context) error
	History(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Personalize(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ApplyLine CLI.
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
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — add a recipient row
//	  - remove <n>     — remove recipient row n
//	  - recipients     — show the recipient list
//	  - subject        — set the email subject
//	  - send           — send one application per valid recipient
//	  - history        — show past sends
//	  - profile        — show the profile
//	  - editprofile    — edit the profile
//	  - personalize    — tailor the cover letter to a job description
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("apl %s> ", statusFn()))
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
				printlnFn("Available commands: add, remove <n>, recipients, subject, send, history, profile, editprofile, personalize, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddRecipient(ctx)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <n>")
				continue
			}
			_ = a.RemoveRecipient(ctx, args)

		case "recipients":
			_ = a.ShowRecipients(ctx)

		case "subject":
			_ = a.SetSubject(ctx)

		case "send":
			_ = a.Send(ctx)

		case "history":
			_ = a.History(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "personalize":
			_ = a.Personalize(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
