package extraction

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/integration/common"
	pkghttp "github.com/tractis/proposal-engine/pkg/http"
	"go.uber.org/zap"
)

// Connector talks to the document text-extraction service.
type Connector struct {
	config    config.ExtractionConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ExtractionConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector("extraction", cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// ExtractText uploads a document and returns its extracted plain text.
func (c *Connector) ExtractText(ctx context.Context, fileData []byte, filename string) (*entity.ExtractedDocument, error) {
	if len(fileData) == 0 {
		return nil, fmt.Errorf("empty file data provided")
	}

	ctxzap.Info(ctx, "extracting document text via extraction service",
		zap.String("filename", filename),
		zap.Int("size", len(fileData)),
	)

	prepareBody := func(writer *multipart.Writer) error {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := part.Write(fileData); err != nil {
			return fmt.Errorf("write file content: %w", err)
		}

		return nil
	}

	opts := append(c.config.Retry.ToRetryOptions(), retry.Context(ctx))

	resp, err := retry.DoWithData(func() (*entity.ExtractedDocument, error) {
		var doc entity.ExtractedDocument
		if err := c.connector.DoMultipartRequest(ctx, http.MethodPost, c.config.ExtractEndpoint, prepareBody, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	ctxzap.Info(ctx, "document text extracted successfully", zap.Int("text_length", len(resp.Text)))

	return resp, nil
}
