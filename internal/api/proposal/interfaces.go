package proposal

import (
	"context"

	"github.com/tractis/proposal-engine/internal/entity"
)

type ProposalUsecase interface {
	StartGeneration(ctx context.Context, req *entity.GenerateProposalRequest) (*entity.GenerationResult, error)
	ContinueEnrichment(ctx context.Context, req *entity.EnrichProposalRequest) (*entity.GenerationResult, error)
	StartGenerationFromFile(ctx context.Context, fileData []byte, filename, clientName, websiteURL string) (*entity.GenerationResult, error)
	ExtractBranding(ctx context.Context, req *entity.ExtractBrandingRequest) (*entity.BrandPalette, error)
	GetSessionStats(ctx context.Context) entity.SessionStats
	GetProposal(ctx context.Context, slug string) (*entity.ProposalRecord, error)
}
