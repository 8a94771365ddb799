package cli

import (
	"context"
	"os"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// wipe zeroes a password buffer once it has been copied out.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Register prompts the user for a name, an email and a password and attempts
// to create an account. The outcome is reported through the notification
// queue; the password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.auth.Register(ctx, name, email, string(password))
}

// Login prompts the user for credentials and tries to authenticate. The
// outcome is reported through the notification queue; the password buffer is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	return a.auth.Login(ctx, email, string(password))
}

// Logout discards the stored token and the in-memory session. No network
// call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
