package branding

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

// MockConnector fakes palette extraction for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) ExtractPalette(ctx context.Context, websiteURL string) (*entity.BrandPalette, error) {
	ctxzap.Info(ctx, "[MOCK] extracting brand palette", zap.String("url", websiteURL))

	if websiteURL == "" {
		return nil, fmt.Errorf("empty website url provided")
	}

	return &entity.BrandPalette{
		Colors:  []string{"#0B1F3A", "#1E6FD9", "#F4F7FB", "#FF6B35"},
		Favicon: websiteURL + "/favicon.ico",
	}, nil
}
