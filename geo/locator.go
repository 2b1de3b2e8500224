package geo

import (
	"fmt"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

// ErrPositionNotFound is returned by Locator implementations when the
// positioning source denies or cannot serve the request.
var ErrPositionNotFound = fmt.Errorf("device position is not available")

// DefaultLocation is the fixed city-center fallback used when no device
// position can be obtained: Haikou.
var DefaultLocation = schema.Location{
	Latitude:  20.04,
	Longitude: 110.32,
}

// Locator reports the current device position. Implementations wrap
// whatever positioning source the host platform offers.
type Locator interface {
	CurrentPosition() (schema.Location, error)
}

var defaultLocator Locator

func SetLocator(locator Locator) {
	defaultLocator = locator
}

// CurrentPosition asks the configured locator for a fix once. On any
// failure, or when no locator is configured, it returns DefaultLocation;
// callers cannot tell the two outcomes apart and are not meant to.
func CurrentPosition() schema.Location {
	if defaultLocator == nil {
		return DefaultLocation
	}

	position, err := defaultLocator.CurrentPosition()
	if err != nil {
		return DefaultLocation
	}

	return position
}
