package proposal

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/agent"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/validator"
	"github.com/tractis/proposal-engine/internal/session"
	"go.uber.org/zap"
)

// ProposalUsecase orchestrates the three-stage generation workflow: parse the
// document, enrich it through conversation when sections are missing, then
// design the final proposal.
type ProposalUsecase struct {
	parser     *agent.Parser
	enrichment *agent.Enrichment
	designer   *agent.Designer
	sessions   *session.Store
	archive    Archive
	extraction ExtractionConnector
	branding   BrandingConnector
	validator  *validator.Validator
	logger     *zap.Logger
}

func NewUsecase(
	parser *agent.Parser,
	enrichment *agent.Enrichment,
	designer *agent.Designer,
	sessions *session.Store,
	archive Archive,
	extraction ExtractionConnector,
	branding BrandingConnector,
	validator *validator.Validator,
	logger *zap.Logger,
) *ProposalUsecase {
	return &ProposalUsecase{
		parser:     parser,
		enrichment: enrichment,
		designer:   designer,
		sessions:   sessions,
		archive:    archive,
		extraction: extraction,
		branding:   branding,
		validator:  validator,
		logger:     logger,
	}
}

// StartGeneration parses the document and either finishes the proposal in one
// pass or opens an enrichment session.
func (uc *ProposalUsecase) StartGeneration(
	ctx context.Context,
	req *entity.GenerateProposalRequest,
) (*entity.GenerationResult, error) {
	if err := uc.validator.ValidateGenerate(req); err != nil {
		return nil, err
	}

	client := uc.resolveClient(ctx, req)

	parseResult, err := uc.parser.Parse(ctx, req.DocumentText)
	if err != nil {
		return nil, err
	}

	if parseResult.Overall == entity.OverallComplete {
		ctxzap.Info(ctx, "document complete, skipping enrichment")
		return uc.finalize(ctx, &parseResult.Content, client)
	}

	ctxzap.Info(ctx, "document incomplete, starting enrichment session",
		zap.Int("gap_count", len(parseResult.MissingOrWeak)),
	)

	turn, err := uc.enrichment.Start(ctx, &parseResult.Content, parseResult.MissingOrWeak)
	if err != nil {
		return nil, err
	}

	// The first turn always opens a session, even when the model claims
	// completion outright; the caller drives the next step through
	// ContinueEnrichment.
	sessionID := uc.sessions.Create(&entity.EnrichmentSession{
		Content:       parseResult.Content,
		MissingOrWeak: parseResult.MissingOrWeak,
		Transcript: []entity.ChatMessage{
			{Role: entity.RoleAssistant, Content: turn.AssistantMessage},
		},
		Client: client,
	})

	ctxzap.Info(ctx, "enrichment session started", zap.String("session_id", sessionID))

	return &entity.GenerationResult{
		Status:            entity.StatusNeedsEnrichment,
		SessionID:         sessionID,
		EnrichmentMessage: turn.AssistantMessage,
	}, nil
}

// ContinueEnrichment runs one conversation turn for an open session. The
// session transcript is committed only after the turn succeeds, so a provider
// failure leaves the session exactly as it was.
func (uc *ProposalUsecase) ContinueEnrichment(
	ctx context.Context,
	req *entity.EnrichProposalRequest,
) (*entity.GenerationResult, error) {
	if err := uc.validator.ValidateEnrich(req); err != nil {
		return nil, err
	}

	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		return nil, err
	}

	turn, err := uc.enrichment.Continue(ctx, sess, req.Message)
	if err != nil {
		return nil, err
	}

	sess.Transcript = append(sess.Transcript,
		entity.ChatMessage{Role: entity.RoleUser, Content: req.Message},
		entity.ChatMessage{Role: entity.RoleAssistant, Content: turn.AssistantMessage},
	)

	if turn.Complete {
		ctxzap.Info(ctx, "enrichment complete, proceeding to design",
			zap.String("session_id", req.SessionID),
		)

		uc.sessions.Delete(req.SessionID)

		return uc.finalize(ctx, turn.FinalContent, sess.Client)
	}

	if err := uc.sessions.Update(req.SessionID, sess); err != nil {
		return nil, err
	}

	return &entity.GenerationResult{
		Status:            entity.StatusNeedsEnrichment,
		SessionID:         req.SessionID,
		EnrichmentMessage: turn.AssistantMessage,
	}, nil
}

// StartGenerationFromFile extracts text from an uploaded document and starts
// generation on it.
func (uc *ProposalUsecase) StartGenerationFromFile(
	ctx context.Context,
	fileData []byte,
	filename, clientName, websiteURL string,
) (*entity.GenerationResult, error) {
	doc, err := uc.extraction.ExtractText(ctx, fileData, filename)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	return uc.StartGeneration(ctx, &entity.GenerateProposalRequest{
		DocumentText: doc.Text,
		ClientName:   clientName,
		WebsiteURL:   websiteURL,
	})
}

// ExtractBranding fetches the brand palette of a client website.
func (uc *ProposalUsecase) ExtractBranding(
	ctx context.Context,
	req *entity.ExtractBrandingRequest,
) (*entity.BrandPalette, error) {
	if err := uc.validator.ValidateExtractBranding(req); err != nil {
		return nil, err
	}

	return uc.branding.ExtractPalette(ctx, req.URL)
}

// GetSessionStats reports live session counts for monitoring.
func (uc *ProposalUsecase) GetSessionStats(ctx context.Context) entity.SessionStats {
	return uc.sessions.Stats()
}

// GetProposal returns an archived proposal by slug.
func (uc *ProposalUsecase) GetProposal(ctx context.Context, slug string) (*entity.ProposalRecord, error) {
	if uc.archive == nil {
		return nil, entity.ErrProposalNotFound
	}

	return uc.archive.GetBySlug(ctx, slug)
}

// finalize runs the designer on validated content and archives the result.
// Archiving is best-effort: a storage failure is logged but never fails a
// generation that already produced a valid proposal.
func (uc *ProposalUsecase) finalize(
	ctx context.Context,
	content *entity.ProposalContent,
	client *entity.Client,
) (*entity.GenerationResult, error) {
	designed, err := uc.designer.Design(ctx, content)
	if err != nil {
		return nil, err
	}

	result := &entity.GenerationResult{
		Status:           entity.StatusComplete,
		Proposal:         &designed.Proposal,
		VariantReasoning: designed.VariantReasoning,
	}

	if uc.archive != nil {
		rec, err := uc.archiveProposal(ctx, designed, client)
		if err != nil {
			ctxzap.Warn(ctx, "failed to archive proposal", zap.Error(err))
		} else {
			result.Slug = rec.Slug
		}
	}

	ctxzap.Info(ctx, "proposal generation complete", zap.String("slug", result.Slug))

	return result, nil
}
