package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

// MockConnector fakes text extraction for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) ExtractText(ctx context.Context, fileData []byte, filename string) (*entity.ExtractedDocument, error) {
	ctxzap.Info(ctx, "[MOCK] extracting document text", zap.String("filename", filename))

	if len(fileData) == 0 {
		return nil, fmt.Errorf("empty file data provided")
	}

	text := strings.Repeat("Acme Logistics wants a real-time shipment tracking platform. ", 4)

	return &entity.ExtractedDocument{
		FileName: filename,
		FileType: "text/plain",
		Text:     text,
		Length:   len(text),
	}, nil
}
