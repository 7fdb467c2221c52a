package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/logger"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

// Designer chooses a presentation variant for every proposal section and
// injects the fixed company sections into the result.
type Designer struct {
	client ChatClient
	logger *zap.Logger
}

func NewDesigner(client ChatClient, logger *zap.Logger) *Designer {
	return &Designer{
		client: client,
		logger: logger,
	}
}

// Design runs variant selection on validated enriched content.
func (d *Designer) Design(ctx context.Context, content *entity.ProposalContent) (*entity.DesignerOutput, error) {
	ctx = logger.WithStage(ctx, entity.StageDesigner)
	ctxzap.Info(ctx, "selecting proposal variants")

	contentJSON, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal enriched content: %w", err)
	}

	userMessage := fmt.Sprintf(
		"Please analyze this enriched proposal content and select the optimal component variant for each section:\n\n%s\n\nReturn the complete proposal with variant selections and reasoning.",
		contentJSON,
	)

	raw, err := d.client.Complete(ctx, designerPrompt, []entity.ChatMessage{
		{Role: entity.RoleUser, Content: userMessage},
	})
	if err != nil {
		return nil, &entity.ProviderError{Stage: entity.StageDesigner, Err: err}
	}

	out, err := schema.ParseDesignerOutput(raw)
	if err != nil {
		return nil, err
	}

	applyFixedSections(&out.Proposal)

	ctxzap.Info(ctx, "variant selection complete",
		zap.String("executive_summary_variant", string(out.Proposal.ExecutiveSummaryVariant)),
		zap.String("needs_variant", string(out.Proposal.NeedsVariant)),
		zap.String("solution_variant", string(out.Proposal.SolutionVariant)),
		zap.String("features_variant", string(out.Proposal.FeaturesVariant)),
		zap.String("roadmap_variant", string(out.Proposal.RoadmapVariant)),
		zap.String("pricing_variant", string(out.Proposal.PricingVariant)),
	)

	return out, nil
}
