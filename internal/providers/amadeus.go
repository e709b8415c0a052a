package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

// CityGeocoder resolves a free-text city name to coordinates.
type CityGeocoder interface {
	GeocodeCity(ctx context.Context, city string) (response_models.City, error)
}

type AmadeusClient struct {
	cfg    config.AmadeusConfig
	t      *transport
	tokens memcache.Store[string]
	mu     sync.Mutex // serializes token refreshes
}

func NewAmadeusClient(cfg config.AmadeusConfig, httpClient *http.Client, tokens memcache.Store[string], log *zap.Logger) *AmadeusClient {
	if tokens == nil {
		tokens = memcache.NewTTLStore[string]()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &AmadeusClient{
		cfg:    cfg,
		t:      newTransport("amadeus", httpClient, log),
		tokens: tokens,
	}
}

type amadeusTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type amadeusLocationsResponse struct {
	Data []struct {
		Name     string `json:"name"`
		IATACode string `json:"iataCode"`
		SubType  string `json:"subType"`
		GeoCode  struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geoCode"`
		Address struct {
			CityName    string `json:"cityName"`
			CountryCode string `json:"countryCode"`
		} `json:"address"`
	} `json:"data"`
}

func (a *AmadeusClient) tokenKey() string {
	return "amadeus:token:" + a.cfg.ClientID
}

func (a *AmadeusClient) accessToken(ctx context.Context) (string, error) {
	if tok, ok := a.tokens.Get(a.tokenKey()); ok {
		return tok, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// another caller may have refreshed while we waited
	if tok, ok := a.tokens.Get(a.tokenKey()); ok {
		return tok, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.cfg.ClientID)
	form.Set("client_secret", a.cfg.ClientSecret)
	endpoint := a.cfg.BaseURL + "/v1/security/oauth2/token"

	resp, err := a.t.doWithRetry(ctx, "token", func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("amadeus token: %w", err)
	}
	defer resp.Body.Close()

	var tr amadeusTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode amadeus token: %w", err)
	}
	if tr.AccessToken == "" {
		return "", errors.New("amadeus token: empty access_token")
	}

	ttl := time.Duration(tr.ExpiresIn-30) * time.Second
	if ttl <= 0 {
		ttl = time.Second
	}
	a.tokens.Set(a.tokenKey(), tr.AccessToken, ttl)
	return tr.AccessToken, nil
}

// GeocodeCity returns the first CITY or AIRPORT match for city.
func (a *AmadeusClient) GeocodeCity(ctx context.Context, city string) (response_models.City, error) {
	if !a.cfg.Configured() {
		return response_models.City{}, fmt.Errorf("amadeus credentials missing: %w", utils.ErrProviderNotConfigured)
	}

	decoded, err := a.searchLocations(ctx, city)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusUnauthorized {
		// token revoked early; drop it and try once more
		a.tokens.Delete(a.tokenKey())
		decoded, err = a.searchLocations(ctx, city)
	}
	if err != nil {
		return response_models.City{}, err
	}

	if len(decoded.Data) == 0 {
		return response_models.City{}, fmt.Errorf("amadeus locations %q: %w", city, utils.ErrCityNotFound)
	}

	first := decoded.Data[0]
	name := first.Name
	if first.Address.CityName != "" {
		name = first.Address.CityName
	}
	return response_models.City{
		Name:        name,
		IATACode:    first.IATACode,
		CountryCode: first.Address.CountryCode,
		GeoCode: response_models.Coordinates{
			Latitude:  first.GeoCode.Latitude,
			Longitude: first.GeoCode.Longitude,
		},
	}, nil
}

func (a *AmadeusClient) searchLocations(ctx context.Context, city string) (*amadeusLocationsResponse, error) {
	token, err := a.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("subType", "CITY,AIRPORT")
	q.Set("keyword", city)
	endpoint := a.cfg.BaseURL + "/v1/reference-data/locations?" + q.Encode()

	resp, err := a.t.doWithRetry(ctx, "locations", func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("amadeus locations: %w", err)
	}
	defer resp.Body.Close()

	var decoded amadeusLocationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode amadeus locations: %w", err)
	}
	return &decoded, nil
}
