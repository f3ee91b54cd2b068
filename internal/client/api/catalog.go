package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/logging"
	"github.com/avasiliev/fittrack/internal/netx"
)

// CatalogGateway is the raw exercise-catalog surface. Both methods fail on
// any transport or status problem; the degrade-gracefully fallback is the
// catalog service's job, not the gateway's.
type CatalogGateway interface {
	ExercisesByMuscle(ctx context.Context, muscle string) ([]models.Exercise, error)
	ExercisesByName(ctx context.Context, name string) ([]models.Exercise, error)
}

// HTTPCatalogGateway queries the exercise API with an API-key header.
type HTTPCatalogGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logging.Logger
}

func NewHTTPCatalogGateway(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *HTTPCatalogGateway {
	return &HTTPCatalogGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  netx.NewClient(timeout),
		log:     log,
	}
}

// exerciseResponse is one element of the catalog's response array.
type exerciseResponse struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

func (g *HTTPCatalogGateway) ExercisesByMuscle(ctx context.Context, muscle string) ([]models.Exercise, error) {
	return g.fetch(ctx, url.Values{"muscle": {muscle}})
}

func (g *HTTPCatalogGateway) ExercisesByName(ctx context.Context, name string) ([]models.Exercise, error) {
	return g.fetch(ctx, url.Values{"name": {name}})
}

func (g *HTTPCatalogGateway) fetch(ctx context.Context, query url.Values) ([]models.Exercise, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodGet, g.baseURL+"/exercises?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if g.apiKey != "" {
		req.Header.Set("X-Api-Key", g.apiKey)
	}

	status, body, err := netx.Do(g.client, req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d: %s", status, rejectionMessage(body, "failed to fetch exercises"))
	}

	var items []exerciseResponse
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// Ids are synthesized from the slugified name plus the item's index in
	// this result array; they are not stable across fetches.
	exercises := make([]models.Exercise, 0, len(items))
	for i, item := range items {
		exercises = append(exercises, models.Exercise{
			ID:           fmt.Sprintf("%s-%d", slugify(item.Name), i),
			Name:         item.Name,
			Type:         item.Type,
			Muscle:       item.Muscle,
			Equipment:    item.Equipment,
			Difficulty:   item.Difficulty,
			Instructions: item.Instructions,
		})
	}
	return exercises, nil
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
