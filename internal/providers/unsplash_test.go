package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/config"
	"tripplanner/pkg/utils"
)

func TestDestinationImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/random", r.URL.Path)
		assert.Equal(t, "Lisbon travel landmark landscape", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "access", r.URL.Query().Get("client_id"))
		w.Write([]byte(`{
			"urls":{"regular":"https://images.unsplash.com/photo-1"},
			"user":{"name":"Ana","links":{"html":"https://unsplash.com/@ana"}},
			"links":{"html":"https://unsplash.com/photos/1"}
		}`))
	}))
	defer srv.Close()

	c := NewUnsplashClient(config.UnsplashConfig{AccessKey: "access", BaseURL: srv.URL}, nil, nil)
	img, err := c.DestinationImage(context.Background(), "Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/photo-1", img.URL)
	assert.Equal(t, "Ana", img.Photographer)
	assert.Equal(t, "https://unsplash.com/@ana", img.ProfileURL)
	assert.Equal(t, "https://unsplash.com/photos/1", img.Link)
}

func TestDestinationImageWithoutKey(t *testing.T) {
	c := NewUnsplashClient(config.UnsplashConfig{BaseURL: "http://unused"}, nil, nil)
	_, err := c.DestinationImage(context.Background(), "Lisbon")
	assert.ErrorIs(t, err, utils.ErrProviderNotConfigured)
}

func TestDestinationImageEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewUnsplashClient(config.UnsplashConfig{AccessKey: "access", BaseURL: srv.URL}, nil, nil)
	_, err := c.DestinationImage(context.Background(), "Lisbon")
	assert.Error(t, err)
}
