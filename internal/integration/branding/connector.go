package branding

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/integration/common"
	pkghttp "github.com/tractis/proposal-engine/pkg/http"
	"go.uber.org/zap"
)

// Connector talks to the brand palette extraction service.
type Connector struct {
	config    config.BrandingConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.BrandingConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector("branding", cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

type paletteRequest struct {
	URL string `json:"url"`
}

// ExtractPalette fetches the brand color palette of a website.
func (c *Connector) ExtractPalette(ctx context.Context, websiteURL string) (*entity.BrandPalette, error) {
	if websiteURL == "" {
		return nil, fmt.Errorf("empty website url provided")
	}

	ctxzap.Info(ctx, "extracting brand palette via branding service", zap.String("url", websiteURL))

	opts := append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))

	resp, err := retry.DoWithData(func() (*entity.BrandPalette, error) {
		var palette entity.BrandPalette
		req := paletteRequest{URL: websiteURL}
		if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.PaletteEndpoint, req, &palette); err != nil {
			return nil, err
		}
		return &palette, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("extract brand palette: %w", err)
	}

	ctxzap.Info(ctx, "brand palette extracted successfully", zap.Int("color_count", len(resp.Colors)))

	return resp, nil
}
