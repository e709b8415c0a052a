package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

type POIRepository interface {
	ListByCity(ctx context.Context, cityID uuid.UUID) ([]db_models.POI, error)
	// ReplaceForCity swaps the cached POI set of a city and stamps the sync time.
	ReplaceForCity(ctx context.Context, cityID uuid.UUID, pois []db_models.POI, syncedAt int64) error
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) ListByCity(ctx context.Context, cityID uuid.UUID) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityID).
		Order("position ASC").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) ReplaceForCity(ctx context.Context, cityID uuid.UUID, pois []db_models.POI, syncedAt int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city_id = ?", cityID).Delete(&db_models.POI{}).Error; err != nil {
			return fmt.Errorf("failed to clear cached POIs: %w", err)
		}

		for i := range pois {
			pois[i].CityID = cityID
			pois[i].Position = i
		}
		if len(pois) > 0 {
			if err := tx.CreateInBatches(pois, 100).Error; err != nil {
				return fmt.Errorf("failed to insert POIs: %w", err)
			}
		}

		result := tx.Model(&db_models.City{}).
			Where("id = ?", cityID).
			Update("pois_synced_at", syncedAt)
		if result.Error != nil {
			return fmt.Errorf("failed to stamp city sync: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
