package branding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	pkgretry "github.com/tractis/proposal-engine/internal/pkg/retry"
	"go.uber.org/zap"
)

func newTestConnector(serverURL string) *Connector {
	return NewConnector(config.BrandingConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:                   serverURL,
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: time.Second,
		},
		PaletteEndpoint: "/palette",
		Retry: pkgretry.RetryConfig{
			Attempts: 2,
			Delay:    time.Millisecond,
			MaxDelay: 5 * time.Millisecond,
		},
	}, zap.NewNop())
}

func TestExtractPalette(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/palette", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req struct {
			URL string `json:"url"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://acme.example", req.URL)

		json.NewEncoder(w).Encode(entity.BrandPalette{
			Colors:  []string{"#112233", "#445566"},
			Favicon: "https://acme.example/favicon.ico",
		})
	}))
	defer server.Close()

	palette, err := newTestConnector(server.URL).ExtractPalette(context.Background(), "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#445566"}, palette.Colors)
	assert.Equal(t, "https://acme.example/favicon.ico", palette.Favicon)
}

func TestExtractPalette_EmptyURL(t *testing.T) {
	_, err := newTestConnector("http://unused").ExtractPalette(context.Background(), "")
	assert.Error(t, err)
}

func TestExtractPalette_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestConnector(server.URL).ExtractPalette(context.Background(), "https://acme.example")
	assert.Error(t, err)
}
