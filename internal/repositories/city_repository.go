package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripplanner/internal/models/db_models"
)

type CityRepository interface {
	// GetBySearchKey returns nil, nil when the city has never been geocoded.
	GetBySearchKey(ctx context.Context, searchKey string) (*db_models.City, error)
	Upsert(ctx context.Context, city *db_models.City) (*db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

// SearchKey normalizes user input so "  paris " and "Paris" share a cache row.
func SearchKey(city string) string {
	return strings.Join(strings.Fields(strings.ToLower(city)), " ")
}

func (r *cityRepository) GetBySearchKey(ctx context.Context, searchKey string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).
		Where("search_key = ?", searchKey).
		First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Upsert(ctx context.Context, city *db_models.City) (*db_models.City, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "search_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "iata_code", "country_code", "latitude", "longitude", "updated_at"}),
		}).
		Create(city).Error
	if err != nil {
		return nil, err
	}
	// the row id differs from city.ID when the insert hit the conflict branch
	return r.GetBySearchKey(ctx, city.SearchKey)
}
