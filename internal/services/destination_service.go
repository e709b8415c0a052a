package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/providers"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const (
	weatherTTL = 10 * time.Minute
	imageTTL   = 24 * time.Hour
)

// DestinationServiceInterface acquires everything known about a city.
// ErrPOIDataUnavailable means the POI lookup failed; a destination with
// POIStatusEmpty means it succeeded and found nothing.
type DestinationServiceInterface interface {
	Discover(ctx context.Context, city string) (*response_models.Destination, error)
	ListPOIs(ctx context.Context, city string) ([]response_models.POI, error)
}

type DestinationDeps struct {
	Geocoder providers.CityGeocoder
	Finder   providers.POIFinder
	Weather  providers.WeatherProvider
	Images   providers.ImageProvider

	// Cities and POIs may be nil, in which case every lookup goes upstream.
	Cities   repositories.CityRepository
	POIs     repositories.POIRepository
	Payloads repositories.PayloadCache

	POICacheTTL time.Duration
	Logger      *zap.Logger
}

type DestinationService struct {
	deps DestinationDeps
	log  *zap.Logger
	now  func() time.Time
}

func NewDestinationService(deps DestinationDeps) DestinationServiceInterface {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if deps.Payloads == nil {
		deps.Payloads = repositories.NewMemoryPayloadCache(nil)
	}
	return &DestinationService{deps: deps, log: log.Named("destination"), now: time.Now}
}

func (s *DestinationService) Discover(ctx context.Context, city string) (*response_models.Destination, error) {
	resolved, row, err := s.resolveCity(ctx, city)
	if err != nil {
		return nil, err
	}

	dest := &response_models.Destination{City: resolved}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pois, err := s.loadPOIs(gctx, resolved, row)
		if err != nil {
			return err
		}
		dest.POIs = pois
		return nil
	})
	g.Go(func() error {
		dest.Weather = s.loadWeather(gctx, resolved.GeoCode)
		return nil
	})
	g.Go(func() error {
		dest.HeroImage = s.loadImage(gctx, city)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dest.POIStatus = statusOf(dest.POIs)
	return dest, nil
}

func (s *DestinationService) ListPOIs(ctx context.Context, city string) ([]response_models.POI, error) {
	resolved, row, err := s.resolveCity(ctx, city)
	if err != nil {
		return nil, err
	}
	return s.loadPOIs(ctx, resolved, row)
}

func statusOf(pois []response_models.POI) response_models.POIStatus {
	if len(pois) == 0 {
		return response_models.POIStatusEmpty
	}
	return response_models.POIStatusOK
}

func (s *DestinationService) resolveCity(ctx context.Context, city string) (response_models.City, *db_models.City, error) {
	key := repositories.SearchKey(city)
	if key == "" {
		return response_models.City{}, nil, fmt.Errorf("city is required: %w", utils.ErrInvalidInput)
	}

	if s.deps.Cities != nil {
		row, err := s.deps.Cities.GetBySearchKey(ctx, key)
		if err != nil {
			s.log.Warn("city cache lookup failed", zap.String("city", key), zap.Error(err))
		} else if row != nil {
			metrics.CacheHit("city")
			return cityFromRow(row), row, nil
		}
		metrics.CacheMiss("city")
	}

	resolved, err := s.deps.Geocoder.GeocodeCity(ctx, city)
	if err != nil {
		if errors.Is(err, utils.ErrCityNotFound) || errors.Is(err, utils.ErrProviderNotConfigured) ||
			errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return response_models.City{}, nil, err
		}
		return response_models.City{}, nil, fmt.Errorf("geocode %q: %v: %w", city, err, utils.ErrUpstreamUnavailable)
	}

	if s.deps.Cities == nil {
		return resolved, nil, nil
	}

	row, err := s.deps.Cities.Upsert(ctx, &db_models.City{
		SearchKey:   key,
		Name:        resolved.Name,
		IATACode:    resolved.IATACode,
		CountryCode: resolved.CountryCode,
		Latitude:    resolved.GeoCode.Latitude,
		Longitude:   resolved.GeoCode.Longitude,
	})
	if err != nil {
		s.log.Warn("city cache write failed", zap.String("city", key), zap.Error(err))
		return resolved, nil, nil
	}
	return resolved, row, nil
}

func (s *DestinationService) loadPOIs(ctx context.Context, city response_models.City, row *db_models.City) ([]response_models.POI, error) {
	cacheable := row != nil && s.deps.POIs != nil

	if cacheable && s.fresh(row.POIsSyncedAt) {
		cached, err := s.deps.POIs.ListByCity(ctx, row.ID)
		if err == nil {
			metrics.CacheHit("poi")
			return poisFromRows(cached), nil
		}
		s.log.Warn("poi cache read failed", zap.String("city", row.SearchKey), zap.Error(err))
	}
	metrics.CacheMiss("poi")

	pois, err := s.deps.Finder.FindPOIs(ctx, city.GeoCode)
	if err != nil {
		if !errors.Is(err, utils.ErrPOIDataUnavailable) {
			err = fmt.Errorf("%v: %w", err, utils.ErrPOIDataUnavailable)
		}
		return nil, err
	}
	if pois == nil {
		pois = []response_models.POI{}
	}

	if cacheable {
		if err := s.deps.POIs.ReplaceForCity(ctx, row.ID, rowsFromPOIs(pois), s.now().Unix()); err != nil {
			s.log.Warn("poi cache write failed", zap.String("city", row.SearchKey), zap.Error(err))
		}
	}
	return pois, nil
}

func (s *DestinationService) fresh(syncedAt int64) bool {
	if syncedAt <= 0 || s.deps.POICacheTTL <= 0 {
		return false
	}
	return s.now().Sub(time.Unix(syncedAt, 0)) < s.deps.POICacheTTL
}

func (s *DestinationService) loadWeather(ctx context.Context, at response_models.Coordinates) *response_models.Weather {
	key := repositories.WeatherKey(at.Latitude, at.Longitude)

	var cached response_models.Weather
	if found, err := s.deps.Payloads.Get(ctx, key, &cached); err != nil {
		s.log.Warn("weather cache read failed", zap.Error(err))
	} else if found {
		metrics.CacheHit("weather")
		return &cached
	}
	metrics.CacheMiss("weather")

	if s.deps.Weather == nil {
		return nil
	}
	w, err := s.deps.Weather.CurrentWeather(ctx, at)
	if err != nil {
		s.log.Info("weather unavailable", zap.Error(err))
		return nil
	}
	if err := s.deps.Payloads.Set(ctx, key, w, weatherTTL); err != nil {
		s.log.Warn("weather cache write failed", zap.Error(err))
	}
	return &w
}

func (s *DestinationService) loadImage(ctx context.Context, city string) response_models.Image {
	key := repositories.ImageKey(repositories.SearchKey(city))

	var cached response_models.Image
	if found, err := s.deps.Payloads.Get(ctx, key, &cached); err != nil {
		s.log.Warn("image cache read failed", zap.Error(err))
	} else if found {
		metrics.CacheHit("image")
		return cached
	}
	metrics.CacheMiss("image")

	if s.deps.Images == nil {
		return providers.FallbackImage
	}
	img, err := s.deps.Images.DestinationImage(ctx, city)
	if err != nil {
		s.log.Info("image unavailable, using fallback", zap.Error(err))
		return providers.FallbackImage
	}
	if err := s.deps.Payloads.Set(ctx, key, img, imageTTL); err != nil {
		s.log.Warn("image cache write failed", zap.Error(err))
	}
	return img
}

func cityFromRow(row *db_models.City) response_models.City {
	return response_models.City{
		Name:        row.Name,
		IATACode:    row.IATACode,
		CountryCode: row.CountryCode,
		GeoCode:     response_models.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude},
	}
}

func poisFromRows(rows []db_models.POI) []response_models.POI {
	out := make([]response_models.POI, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.POI{
			OSMID:       r.OSMID,
			Name:        r.Name,
			Category:    r.Category,
			EntranceFee: r.EntranceFee,
			GeoCode:     response_models.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
			Tags:        []string(r.Tags),
		})
	}
	return out
}

func rowsFromPOIs(pois []response_models.POI) []db_models.POI {
	out := make([]db_models.POI, 0, len(pois))
	for _, p := range pois {
		out = append(out, db_models.POI{
			OSMID:       p.OSMID,
			Name:        p.Name,
			Category:    p.Category,
			EntranceFee: p.EntranceFee,
			Latitude:    p.GeoCode.Latitude,
			Longitude:   p.GeoCode.Longitude,
			Tags:        p.Tags,
		})
	}
	return out
}
