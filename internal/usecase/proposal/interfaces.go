package proposal

import (
	"context"

	"github.com/tractis/proposal-engine/internal/entity"
)

// Archive persists finished proposals. It is optional; a nil archive disables
// persistence and the slug endpoints.
type Archive interface {
	Create(ctx context.Context, rec *entity.ProposalRecord) error
	GetBySlug(ctx context.Context, slug string) (*entity.ProposalRecord, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type ExtractionConnector interface {
	ExtractText(ctx context.Context, fileData []byte, filename string) (*entity.ExtractedDocument, error)
}

type BrandingConnector interface {
	ExtractPalette(ctx context.Context, websiteURL string) (*entity.BrandPalette, error)
}
