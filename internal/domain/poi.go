package domain

// POI is a point of interest from the catalog.
// The catalog is managed elsewhere; this service only reads it.
type POI struct {
	ID          int64
	Name        string
	Description string
	Tags        []string
	Lat         float64
	Lng         float64
	Image       string
	Visitors    int
}

// POIPopularity pairs a POI with the number of users who liked it.
type POIPopularity struct {
	POI
	TotalLikes int64
}
