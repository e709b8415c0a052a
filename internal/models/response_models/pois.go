package response_models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// POI is a discovered attraction as handed to the planning core.
type POI struct {
	OSMID       int64       `json:"osm_id,omitempty"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	EntranceFee float64     `json:"entrance_fee"`
	GeoCode     Coordinates `json:"geo_code"`
	Tags        []string    `json:"tags,omitempty"`
}
