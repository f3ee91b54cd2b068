package cli

import (
	"context"
	"fmt"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/services"
)

// requireSession guards the catalog and favourites commands. When nobody is
// logged in it applies the redirect rule (back to the auth screen) and tells
// the user what to do.
func (a *App) requireSession(target services.ScreenGroup) bool {
	if a.navigate(target) != target {
		printlnFn("Please log in first (type 'login' or 'register').")
		return false
	}
	return true
}

func (a *App) printExercise(e models.Exercise) {
	mark := " "
	if a.favourites.Contains(e.ID) {
		mark = "*"
	}
	printlnFn(fmt.Sprintf("%s %-40s  %-12s  %-12s  %s", mark, e.ID, e.Muscle, e.Difficulty, e.Name))
}

func (a *App) printExercises(items []models.Exercise) {
	if len(items) == 0 {
		printlnFn("No exercises found.")
		return
	}
	for _, e := range items {
		a.printExercise(e)
	}
	printlnFn(fmt.Sprintf("%d exercise(s). Favourites are marked with *.", len(items)))
}

// List shows exercises for a muscle group, the default group when none is
// given. This command never fails: when the catalog service is unreachable
// the built-in fallback list is shown instead.
func (a *App) List(ctx context.Context, muscle string) error {
	if !a.requireSession(services.GroupMain) {
		return nil
	}
	a.printExercises(a.catalog.FetchByMuscle(ctx, muscle))
	return nil
}

// Mixed shows a small sample drawn across several muscle groups.
func (a *App) Mixed(ctx context.Context) error {
	if !a.requireSession(services.GroupMain) {
		return nil
	}
	a.printExercises(a.catalog.FetchMixed(ctx))
	return nil
}

// Search looks up exercises by name. Unlike the other catalog commands this
// one surfaces gateway errors to the user.
func (a *App) Search(ctx context.Context, query string) error {
	if !a.requireSession(services.GroupMain) {
		return nil
	}
	items, err := a.catalog.SearchByName(ctx, query)
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}
	a.printExercises(items)
	return nil
}

// Show prints the full detail of a single exercise.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.requireSession(services.GroupDetail) {
		return nil
	}
	e := a.catalog.FetchByID(ctx, id)
	if e == nil {
		printlnFn("Exercise not found:", id)
		return nil
	}

	printlnFn("Name:        ", e.Name)
	printlnFn("Type:        ", e.Type)
	printlnFn("Muscle:      ", e.Muscle)
	printlnFn("Equipment:   ", e.Equipment)
	printlnFn("Difficulty:  ", e.Difficulty)
	if e.Instructions != "" {
		printlnFn("Instructions:", e.Instructions)
	}
	if a.favourites.Contains(e.ID) {
		printlnFn("This exercise is in your favourites.")
	}
	return nil
}
