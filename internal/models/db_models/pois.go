package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type POI struct {
	BaseModel
	CityID      uuid.UUID `gorm:"type:uuid;index;not null"`
	OSMID       int64     `gorm:"index"`
	Position    int       // order returned by the discovery query
	Name        string
	Category    string
	EntranceFee float64
	Latitude    float64
	Longitude   float64
	Tags        pq.StringArray `gorm:"type:text[]"`
}
