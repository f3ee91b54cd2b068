package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCatalogGateway_ExercisesByMuscle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/exercises", r.URL.Path)
		assert.Equal(t, "biceps", r.URL.Query().Get("muscle"))
		assert.Equal(t, "key-abc", r.Header.Get("X-Api-Key"))

		_ = json.NewEncoder(w).Encode([]map[string]string{
			{
				"name": "Barbell Curl", "type": "strength", "muscle": "biceps",
				"equipment": "barbell", "difficulty": "beginner", "instructions": "Curl it.",
			},
			{
				"name": "Hammer Curl", "type": "strength", "muscle": "biceps",
				"equipment": "dumbbell", "difficulty": "beginner", "instructions": "Curl it sideways.",
			},
		})
	}))
	defer srv.Close()

	g := NewHTTPCatalogGateway(srv.URL, "key-abc", time.Second, testLogger())
	exercises, err := g.ExercisesByMuscle(context.Background(), "biceps")
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	assert.Equal(t, "barbell-curl-0", exercises[0].ID)
	assert.Equal(t, "Barbell Curl", exercises[0].Name)
	assert.Equal(t, "biceps", exercises[0].Muscle)
	assert.Equal(t, "hammer-curl-1", exercises[1].ID)
}

func TestHTTPCatalogGateway_ExercisesByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "push up", r.URL.Query().Get("name"))
		_ = json.NewEncoder(w).Encode([]map[string]string{{"name": "Push Up"}})
	}))
	defer srv.Close()

	g := NewHTTPCatalogGateway(srv.URL, "", time.Second, testLogger())
	exercises, err := g.ExercisesByName(context.Background(), "push up")
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "push-up-0", exercises[0].ID)
}

func TestHTTPCatalogGateway_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "missing api key"})
	}))
	defer srv.Close()

	g := NewHTTPCatalogGateway(srv.URL, "", time.Second, testLogger())
	_, err := g.ExercisesByMuscle(context.Background(), "chest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing api key")
}

func TestHTTPCatalogGateway_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewHTTPCatalogGateway(srv.URL, "", time.Second, testLogger())
	_, err := g.ExercisesByMuscle(context.Background(), "chest")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "incline-bench-press", slugify("Incline  Bench Press"))
	assert.Equal(t, "plank", slugify(" Plank "))
}
