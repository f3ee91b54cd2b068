package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/avasiliev/fittrack/internal/logging"
)

// FavouritesService holds the favourites collection in memory and mirrors
// every mutation to storage in full (write-through). The in-memory slice is
// the immediate source of truth for rendering; a failed write is returned to
// the caller and logged, but does not roll the memory back.
//
// Set semantics are keyed by exercise id: adding a present id is a no-op.
type FavouritesService interface {
	Load(ctx context.Context) error
	Items() []models.Exercise
	Contains(id string) bool
	Add(ctx context.Context, exercise models.Exercise) error
	Remove(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []models.Exercise) error
}

type favouritesService struct {
	repo storage.Repository
	log  logging.Logger

	items []models.Exercise
}

func NewFavouritesService(repo storage.Repository, log logging.Logger) FavouritesService {
	return &favouritesService{repo: repo, log: log}
}

// Load replaces the in-memory collection with the persisted one. A missing
// key is an empty collection.
func (f *favouritesService) Load(ctx context.Context) error {
	data, err := f.repo.Get(ctx, storage.KeyFavourites)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		f.items = nil
		return nil
	}

	var items []models.Exercise
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode favourites: %w", err)
	}
	f.items = items
	return nil
}

func (f *favouritesService) Items() []models.Exercise {
	out := make([]models.Exercise, len(f.items))
	copy(out, f.items)
	return out
}

func (f *favouritesService) Contains(id string) bool {
	for _, item := range f.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (f *favouritesService) Add(ctx context.Context, exercise models.Exercise) error {
	if f.Contains(exercise.ID) {
		return nil
	}
	f.items = append(f.items, exercise)
	return f.persist(ctx)
}

func (f *favouritesService) Remove(ctx context.Context, id string) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return f.persist(ctx)
}

func (f *favouritesService) ReplaceAll(ctx context.Context, items []models.Exercise) error {
	f.items = make([]models.Exercise, len(items))
	copy(f.items, items)
	return f.persist(ctx)
}

// persist writes the complete current collection, not a delta.
func (f *favouritesService) persist(ctx context.Context) error {
	data, err := json.Marshal(f.Items())
	if err != nil {
		return fmt.Errorf("encode favourites: %w", err)
	}
	if err := f.repo.Set(ctx, storage.KeyFavourites, data); err != nil {
		f.log.Error(ctx, "favourites write-through failed, memory and storage diverge", "error", err)
		return err
	}
	return nil
}
