package cli

import (
	"context"
	"os"

	"github.com/avasiliev/fittrack/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for account details and attempts to create a new
// local account via the SessionService. On success the new account is logged
// in immediately and the user lands on the main screen.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.session.Register(ctx, services.RegisterInput{
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Welcome,", session.Profile.Username+"!")
	a.navigate(services.GroupMain)
	return nil
}

// Login prompts the user for credentials and tries to authenticate: local
// accounts first, the remote service as a fallback. On success the user lands
// on the main screen; on failure the previous session, if any, stays intact.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.session.Login(ctx, username, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Welcome back,", session.Profile.Username+"!")
	a.navigate(services.GroupMain)
	return nil
}

// Logout removes the persisted session and sends the user back to the auth
// screen. Favourites and the theme preference survive a logout.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	a.navigate(services.GroupAuth)
	return nil
}
