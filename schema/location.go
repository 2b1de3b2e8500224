package schema

// GeoJSON is the stored representation of a coordinate. The coordinate
// ordering is always [longitude, latitude]; the UI-facing Location struct
// is the only other shape and the conversion happens at explicit
// boundaries, never implicitly.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewPoint builds a GeoJSON point from a longitude/latitude pair.
func NewPoint(longitude, latitude float64) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

// Location is the latitude/longitude pair used on the client side and in
// query parameters.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Point converts a Location into its stored GeoJSON form.
func (l Location) Point() *GeoJSON {
	return NewPoint(l.Longitude, l.Latitude)
}

// Location converts a stored point back into the UI-facing pair.
func (g *GeoJSON) Location() Location {
	return Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
