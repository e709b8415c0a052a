package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// FallbackImage is shown whenever Unsplash cannot supply a photo.
var FallbackImage = response_models.Image{
	URL:          "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800",
	Photographer: "Unsplash",
	ProfileURL:   "https://unsplash.com",
	Link:         "https://unsplash.com",
}

type ImageProvider interface {
	DestinationImage(ctx context.Context, city string) (response_models.Image, error)
}

type UnsplashClient struct {
	cfg config.UnsplashConfig
	t   *transport
}

func NewUnsplashClient(cfg config.UnsplashConfig, httpClient *http.Client, log *zap.Logger) *UnsplashClient {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &UnsplashClient{cfg: cfg, t: newTransport("unsplash", httpClient, log)}
}

type unsplashPhoto struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	User struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
	Links struct {
		HTML string `json:"html"`
	} `json:"links"`
}

func (u *UnsplashClient) DestinationImage(ctx context.Context, city string) (response_models.Image, error) {
	if u.cfg.AccessKey == "" {
		return response_models.Image{}, fmt.Errorf("unsplash key missing: %w", utils.ErrProviderNotConfigured)
	}

	q := url.Values{}
	q.Set("query", city+" travel landmark landscape")
	q.Set("orientation", "landscape")
	q.Set("client_id", u.cfg.AccessKey)
	endpoint := u.cfg.BaseURL + "/photos/random?" + q.Encode()

	resp, err := u.t.doWithRetry(ctx, "random", func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept-Version", "v1")
		return req, nil
	})
	if err != nil {
		return response_models.Image{}, fmt.Errorf("unsplash: %w", err)
	}
	defer resp.Body.Close()

	var photo unsplashPhoto
	if err := json.NewDecoder(resp.Body).Decode(&photo); err != nil {
		return response_models.Image{}, fmt.Errorf("decode unsplash: %w", err)
	}
	if photo.URLs.Regular == "" {
		return response_models.Image{}, fmt.Errorf("unsplash: photo without url")
	}

	return response_models.Image{
		URL:          photo.URLs.Regular,
		Photographer: photo.User.Name,
		ProfileURL:   photo.User.Links.HTML,
		Link:         photo.Links.HTML,
	}, nil
}
