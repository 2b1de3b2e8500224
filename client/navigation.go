package client

import (
	"fmt"
	"net/url"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

const (
	navigationBase = "https://uri.amap.com/navigation"
	navigationSrc  = "haikou-toilet-map"

	// NavigationModeWalk is the default travel mode for the hand-off.
	NavigationModeWalk = "walk"
)

// NavigationURL builds the amap navigation hand-off URL from the user's
// position to a toilet. fromName labels the origin in the maps app. The
// URL is opened in a new browsing context by the caller; nothing comes
// back from it.
//
// The scheme wants coordinates as lon,lat,name.
func NavigationURL(from schema.Location, fromName string, to *schema.Toilet, mode string) (string, error) {
	if to == nil || to.Location == nil {
		return "", fmt.Errorf("navigation target has no location")
	}
	if mode == "" {
		mode = NavigationModeWalk
	}

	dest := to.Location.Location()

	return fmt.Sprintf("%s?from=%v,%v,%s&to=%v,%v,%s&mode=%s&src=%s",
		navigationBase,
		from.Longitude, from.Latitude, url.QueryEscape(fromName),
		dest.Longitude, dest.Latitude, url.QueryEscape(to.Name),
		mode, navigationSrc,
	), nil
}
