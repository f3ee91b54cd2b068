package cli

import (
	"context"

	"github.com/avasiliev/fittrack/internal/client/services"
)

// Favourites dispatches the "fav" subcommands:
//
//	fav            — list favourites
//	fav add <id>   — add an exercise by id
//	fav rm <id>    — remove an exercise by id
func (a *App) Favourites(ctx context.Context, args []string) error {
	if !a.requireSession(services.GroupMain) {
		return nil
	}

	if len(args) == 0 {
		items := a.favourites.Items()
		if len(items) == 0 {
			printlnFn("No favourites yet. Use 'fav add <id>'.")
			return nil
		}
		a.printExercises(items)
		return nil
	}

	if len(args) < 2 {
		printlnFn("Usage: fav [add|rm <id>]")
		return nil
	}

	id := args[1]
	switch args[0] {
	case "add":
		return a.addFavourite(ctx, id)
	case "rm":
		return a.removeFavourite(ctx, id)
	default:
		printlnFn("Usage: fav [add|rm <id>]")
		return nil
	}
}

func (a *App) addFavourite(ctx context.Context, id string) error {
	e := a.catalog.FetchByID(ctx, id)
	if e == nil {
		printlnFn("Exercise not found:", id)
		return nil
	}
	if err := a.favourites.Add(ctx, *e); err != nil {
		printlnFn("Saving favourites failed:", err.Error())
		return err
	}
	printlnFn("Added to favourites:", e.Name)
	return nil
}

func (a *App) removeFavourite(ctx context.Context, id string) error {
	if !a.favourites.Contains(id) {
		printlnFn("Not in favourites:", id)
		return nil
	}
	if err := a.favourites.Remove(ctx, id); err != nil {
		printlnFn("Saving favourites failed:", err.Error())
		return err
	}
	printlnFn("Removed from favourites:", id)
	return nil
}
