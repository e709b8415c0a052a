package db_models

// City caches a geocoder answer keyed by the normalized search term.
type City struct {
	BaseModel
	SearchKey    string `gorm:"uniqueIndex;not null"`
	Name         string
	IATACode     string
	CountryCode  string
	Latitude     float64
	Longitude    float64
	POIsSyncedAt int64 // unix seconds of the last POI refresh, 0 when never fetched
	POIs         []POI `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}
