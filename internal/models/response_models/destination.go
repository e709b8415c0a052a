package response_models

type City struct {
	Name        string      `json:"name"`
	IATACode    string      `json:"iata_code,omitempty"`
	CountryCode string      `json:"country_code,omitempty"`
	GeoCode     Coordinates `json:"geo_code"`
}

type Weather struct {
	TempC       float64 `json:"temp_c"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
}

type Image struct {
	URL          string `json:"url"`
	Photographer string `json:"photographer"`
	ProfileURL   string `json:"profile_url"`
	Link         string `json:"link"`
}

type POIStatus string

const (
	POIStatusOK    POIStatus = "ok"
	POIStatusEmpty POIStatus = "empty"
)

// Destination is everything acquired for one city.
// Weather is nil when the provider could not answer.
type Destination struct {
	City      City      `json:"city"`
	POIs      []POI     `json:"pois"`
	POIStatus POIStatus `json:"poi_status"`
	Weather   *Weather  `json:"weather,omitempty"`
	HeroImage Image     `json:"hero_image"`
}
