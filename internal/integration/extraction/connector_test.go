package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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
	return NewConnector(config.ExtractionConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:                   serverURL,
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: time.Second,
			Token:                 "test-token",
		},
		ExtractEndpoint: "/extract",
		Retry: pkgretry.RetryConfig{
			Attempts: 3,
			Delay:    time.Millisecond,
			MaxDelay: 5 * time.Millisecond,
		},
	}, zap.NewNop())
}

func TestExtractText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "brief.pdf", header.Filename)

		json.NewEncoder(w).Encode(entity.ExtractedDocument{
			FileName: header.Filename,
			FileType: "pdf",
			Text:     "We need a shipment tracking platform.",
			Length:   38,
		})
	}))
	defer server.Close()

	doc, err := newTestConnector(server.URL).ExtractText(context.Background(), []byte("%PDF-1.4"), "brief.pdf")
	require.NoError(t, err)
	assert.Equal(t, "We need a shipment tracking platform.", doc.Text)
	assert.Equal(t, "pdf", doc.FileType)
}

func TestExtractText_EmptyFile(t *testing.T) {
	_, err := newTestConnector("http://unused").ExtractText(context.Background(), nil, "brief.pdf")
	assert.Error(t, err)
}

func TestExtractText_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(entity.ExtractedDocument{Text: "recovered"})
	}))
	defer server.Close()

	doc, err := newTestConnector(server.URL).ExtractText(context.Background(), []byte("data"), "brief.pdf")
	require.NoError(t, err)
	assert.Equal(t, "recovered", doc.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractText_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestConnector(server.URL).ExtractText(context.Background(), []byte("data"), "brief.pdf")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}
