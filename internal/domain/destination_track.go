package domain

// Aggregated historical route record keyed by the origin/destination pair.
// One track serves any number of orders; weather figures are long-run means
// over past shipments on the route.
type DestinationTrack struct {
	TrackID            int
	OriginCountry      string
	OriginCity         string
	DestinationCountry string
	DestinationCity    string
	DistanceKm         *float64
	OriginTempMean     *float64
	DestTempMean       *float64
}
