package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

func TestClientGetToilet(t *testing.T) {
	toilet := schema.Toilet{
		ID:       primitive.NewObjectID(),
		SourceID: "X",
		Name:     "clock tower",
		Location: schema.NewPoint(110.3417, 20.0458),
	}

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/toilets/" + toilet.ID.Hex():
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(toilet)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	c := New(backend.URL)

	got, err := c.GetToilet(toilet.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, toilet.ID, got.ID)
	assert.Equal(t, "X", got.SourceID)

	_, err = c.GetToilet(primitive.NewObjectID().Hex())
	assert.Error(t, err)
}

func TestClientNearbyToiletsErrorResponse(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer backend.Close()

	_, err := New(backend.URL).NearbyToilets(schema.Location{}, 0, Filters{})
	assert.Error(t, err)
}
