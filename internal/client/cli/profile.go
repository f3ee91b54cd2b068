package cli

import (
	"context"
	"errors"

	"github.com/avasiliev/fittrack/internal/client/api"
	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/services"
)

// WhoAmI prints the profile of the currently authenticated user.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireSession(services.GroupMain) {
		return nil
	}
	p := a.session.Current().Profile
	printlnFn("ID:        ", p.ID)
	printlnFn("Username:  ", p.Username)
	printlnFn("Email:     ", p.Email)
	if p.FirstName != "" || p.LastName != "" {
		printlnFn("Name:      ", p.FirstName, p.LastName)
	}
	return nil
}

// Theme prints the current colour-scheme preference, or sets it when a mode
// argument is given. Valid modes are light, dark, and system.
func (a *App) Theme(ctx context.Context, mode string) error {
	if mode == "" {
		printlnFn("Theme:", string(a.theme.Mode()))
		return nil
	}

	m, err := models.ParseThemeMode(mode)
	if err != nil {
		printlnFn("Valid themes: light, dark, system")
		return nil
	}
	if err := a.theme.Set(ctx, m); err != nil {
		printlnFn("Saving theme failed:", err.Error())
		return err
	}
	printlnFn("Theme set to", string(m))
	return nil
}

// ToggleTheme flips between light and dark.
func (a *App) ToggleTheme(ctx context.Context) error {
	next, err := a.theme.Toggle(ctx)
	if err != nil {
		printlnFn("Saving theme failed:", err.Error())
		return err
	}
	printlnFn("Theme set to", string(next))
	return nil
}

// Ping checks connectivity to the authentication service.
func (a *App) Ping(ctx context.Context) error {
	if err := a.session.TestConnection(ctx); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Auth service unreachable.")
		} else {
			printlnFn("Ping failed:", err.Error())
		}
		return err
	}
	printlnFn("Auth service reachable.")
	return nil
}
