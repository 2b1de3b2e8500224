package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

type stubLocator struct {
	position schema.Location
	err      error
}

func (s *stubLocator) CurrentPosition() (schema.Location, error) {
	return s.position, s.err
}

func TestCurrentPositionWithoutLocator(t *testing.T) {
	SetLocator(nil)
	assert.Equal(t, DefaultLocation, CurrentPosition())
}

func TestCurrentPositionFromLocator(t *testing.T) {
	fix := schema.Location{Latitude: 20.02, Longitude: 110.35}
	SetLocator(&stubLocator{position: fix})
	defer SetLocator(nil)

	assert.Equal(t, fix, CurrentPosition())
}

func TestCurrentPositionFallsBackOnError(t *testing.T) {
	SetLocator(&stubLocator{err: ErrPositionNotFound})
	defer SetLocator(nil)

	assert.Equal(t, DefaultLocation, CurrentPosition())
}
