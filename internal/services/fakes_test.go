package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
)

type fakeGeocoder struct {
	city  response_models.City
	err   error
	calls int
}

func (f *fakeGeocoder) GeocodeCity(ctx context.Context, city string) (response_models.City, error) {
	f.calls++
	return f.city, f.err
}

type fakeFinder struct {
	mu    sync.Mutex
	pois  []response_models.POI
	err   error
	calls int
}

func (f *fakeFinder) FindPOIs(ctx context.Context, center response_models.Coordinates) ([]response_models.POI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.pois, f.err
}

type fakeWeather struct {
	weather response_models.Weather
	err     error
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, at response_models.Coordinates) (response_models.Weather, error) {
	return f.weather, f.err
}

type fakeImages struct {
	img response_models.Image
	err error
}

func (f *fakeImages) DestinationImage(ctx context.Context, city string) (response_models.Image, error) {
	return f.img, f.err
}

type fakeCityRepo struct {
	rows map[string]*db_models.City
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{rows: map[string]*db_models.City{}}
}

func (r *fakeCityRepo) GetBySearchKey(ctx context.Context, key string) (*db_models.City, error) {
	return r.rows[key], nil
}

func (r *fakeCityRepo) Upsert(ctx context.Context, city *db_models.City) (*db_models.City, error) {
	if existing, ok := r.rows[city.SearchKey]; ok {
		city.ID = existing.ID
		city.POIsSyncedAt = existing.POIsSyncedAt
	} else if city.ID == uuid.Nil {
		city.ID = uuid.New()
	}
	r.rows[city.SearchKey] = city
	return city, nil
}

type fakePOIRepo struct {
	cities *fakeCityRepo
	rows   map[uuid.UUID][]db_models.POI
	writes int
}

func (r *fakePOIRepo) ListByCity(ctx context.Context, cityID uuid.UUID) ([]db_models.POI, error) {
	return r.rows[cityID], nil
}

func (r *fakePOIRepo) ReplaceForCity(ctx context.Context, cityID uuid.UUID, pois []db_models.POI, syncedAt int64) error {
	r.writes++
	r.rows[cityID] = pois
	for _, c := range r.cities.rows {
		if c.ID == cityID {
			c.POIsSyncedAt = syncedAt
		}
	}
	return nil
}
