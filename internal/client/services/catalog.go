package services

import (
	"context"

	"github.com/avasiliev/fittrack/internal/client/api"
	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/logging"
)

// defaultMuscleGroup is queried when the caller does not name one.
const defaultMuscleGroup = "abdominals"

// mixedMuscleGroups are the groups a mixed fetch draws from.
var mixedMuscleGroups = []string{"abdominals", "biceps", "chest", "quadriceps", "triceps"}

// CatalogService is the exercise catalog as the UI sees it. FetchByMuscle,
// FetchMixed, and FetchByID never fail: any gateway problem degrades to the
// built-in fallback list. SearchByName is the one operation that propagates
// errors.
type CatalogService interface {
	FetchByMuscle(ctx context.Context, muscle string) []models.Exercise
	FetchMixed(ctx context.Context) []models.Exercise
	FetchByID(ctx context.Context, id string) *models.Exercise
	SearchByName(ctx context.Context, query string) ([]models.Exercise, error)
}

type catalogService struct {
	gateway api.CatalogGateway
	log     logging.Logger
}

func NewCatalogService(gateway api.CatalogGateway, log logging.Logger) CatalogService {
	return &catalogService{gateway: gateway, log: log}
}

// FetchByMuscle lists exercises for a muscle group, the default group when
// none is given. Any failure or empty result serves the fallback list,
// filtered by the muscle the caller actually asked for.
func (c *catalogService) FetchByMuscle(ctx context.Context, muscle string) []models.Exercise {
	target := muscle
	if target == "" {
		target = defaultMuscleGroup
	}

	exercises, err := c.gateway.ExercisesByMuscle(ctx, target)
	if err != nil {
		c.log.Warn(ctx, "catalog fetch failed, serving fallback", "muscle", target, "error", err)
		return fallbackFiltered(muscle)
	}
	if len(exercises) == 0 {
		c.log.Warn(ctx, "catalog returned no exercises, serving fallback", "muscle", target)
		return fallbackFiltered(muscle)
	}
	return exercises
}

// FetchMixed concatenates up to two exercises from each of the fixed muscle
// groups. A group that yields nothing contributes nothing; an empty aggregate
// degrades to the full fallback list.
func (c *catalogService) FetchMixed(ctx context.Context) []models.Exercise {
	var all []models.Exercise
	for _, muscle := range mixedMuscleGroups {
		exercises := c.FetchByMuscle(ctx, muscle)
		if len(exercises) > 2 {
			exercises = exercises[:2]
		}
		all = append(all, exercises...)
	}

	if len(all) == 0 {
		c.log.Warn(ctx, "mixed fetch yielded nothing, serving full fallback")
		return fallbackFiltered("")
	}
	return all
}

// FetchByID looks an exercise up by its synthetic id: first in the fallback
// list, where ids originate for degraded fetches, then in the default muscle
// group's current listing. Returns nil when nothing matches.
func (c *catalogService) FetchByID(ctx context.Context, id string) *models.Exercise {
	for _, ex := range fallbackCatalog {
		if ex.ID == id {
			found := ex
			return &found
		}
	}

	for _, ex := range c.FetchByMuscle(ctx, "") {
		if ex.ID == id {
			found := ex
			return &found
		}
	}

	c.log.Debug(ctx, "exercise not found", "id", id)
	return nil
}

// SearchByName queries the catalog by exercise name.
func (c *catalogService) SearchByName(ctx context.Context, query string) ([]models.Exercise, error) {
	return c.gateway.ExercisesByName(ctx, query)
}
