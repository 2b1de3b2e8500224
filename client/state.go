package client

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/chcorophyll/Free-Public-Toilet-Map/geo"
	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

// ViewState holds what the map screen needs: the user's position, the
// active filters, the last fetched result set, and which panel is open.
// The displayed list is always derived from those inputs, never stored.
type ViewState struct {
	api       *Client
	localizer *i18n.Localizer

	userLocation schema.Location
	filters      Filters
	toilets      []schema.Toilet

	selected        *schema.Toilet
	filterPanelOpen bool
}

// NewViewState acquires the user position once (falling back to the city
// center when the device cannot provide one) and returns an empty state.
// Call Refresh to load the first result set.
func NewViewState(api *Client, localizer *i18n.Localizer) *ViewState {
	return &ViewState{
		api:          api,
		localizer:    localizer,
		userLocation: geo.CurrentPosition(),
	}
}

// Refresh fetches the result set for the current location and filters.
func (v *ViewState) Refresh() error {
	toilets, err := v.api.NearbyToilets(v.userLocation, 0, v.filters)
	if err != nil {
		return err
	}
	v.toilets = toilets
	return nil
}

// ToggleFilter flips the named filter and refetches; a filter change
// always means a fresh server-side query.
func (v *ViewState) ToggleFilter(key string) error {
	v.filters = v.filters.Toggle(key)
	return v.Refresh()
}

// SelectToilet opens the details panel for a toilet. The filter panel
// closes; the two panels are never open together.
func (v *ViewState) SelectToilet(toilet *schema.Toilet) {
	v.filterPanelOpen = false
	v.selected = toilet
}

// ClearSelection closes the details panel.
func (v *ViewState) ClearSelection() {
	v.selected = nil
}

// OpenFilterPanel opens the filter panel, closing the details panel.
func (v *ViewState) OpenFilterPanel() {
	v.selected = nil
	v.filterPanelOpen = true
}

// CloseFilterPanel closes the filter panel.
func (v *ViewState) CloseFilterPanel() {
	v.filterPanelOpen = false
}

// DisplayList derives the ranked list for the filter panel from the
// current fetched set, user location and filters.
func (v *ViewState) DisplayList() []RankedToilet {
	return RankByDistance(v.toilets, v.userLocation, v.filters)
}

// NavigateTo builds the maps hand-off URL from the user's position to the
// given toilet, labelling the origin in the user's language.
func (v *ViewState) NavigateTo(toilet *schema.Toilet) (string, error) {
	return NavigationURL(v.userLocation, v.label("navigation.my_location"), toilet, NavigationModeWalk)
}

func (v *ViewState) Selected() *schema.Toilet {
	return v.selected
}

func (v *ViewState) FilterPanelOpen() bool {
	return v.filterPanelOpen
}

func (v *ViewState) UserLocation() schema.Location {
	return v.userLocation
}

func (v *ViewState) Filters() Filters {
	return v.filters
}
