package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password and creates an account.
// The returned token is kept, so the user is logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	session, err := a.client.Register(ctx, userName, email, password)
	if err != nil {
		return a.report(err)
	}

	a.userName = session.User.Username
	fmt.Fprintln(a.out, session.Message)
	return nil
}

// Login prompts for credentials and stores the session token in memory.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	session, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return a.report(err)
	}

	a.userName = session.User.Username
	fmt.Fprintln(a.out, session.Message)
	return nil
}

// Logout discards the token. Tokens stay valid server-side until they expire.
func (a *App) Logout(_ context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
