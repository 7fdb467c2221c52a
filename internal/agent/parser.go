package agent

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/logger"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

// Parser structures a raw client document into graded proposal sections.
// It is a single-shot stage: one document in, one validated output out.
type Parser struct {
	client ChatClient
	logger *zap.Logger
}

func NewParser(client ChatClient, logger *zap.Logger) *Parser {
	return &Parser{
		client: client,
		logger: logger,
	}
}

// Parse runs the document through the parsing model and validates the result.
// Provider failures are wrapped with the parser stage label; malformed or
// contract-violating output surfaces as schema errors naming the same stage.
func (p *Parser) Parse(ctx context.Context, documentText string) (*entity.ParserOutput, error) {
	ctx = logger.WithStage(ctx, entity.StageParser)
	ctxzap.Info(ctx, "parsing document",
		zap.Int("document_length", len(documentText)),
	)

	userMessage := fmt.Sprintf(
		"Please parse the following document and structure it into proposal sections:\n\n%s",
		documentText,
	)

	raw, err := p.client.Complete(ctx, parserPrompt, []entity.ChatMessage{
		{Role: entity.RoleUser, Content: userMessage},
	})
	if err != nil {
		return nil, &entity.ProviderError{Stage: entity.StageParser, Err: err}
	}

	out, err := schema.ParseParserOutput(raw)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "document parsed",
		zap.String("overall", string(out.Overall)),
		zap.Int("sections_needing_enrichment", len(out.MissingOrWeak)),
	)

	return out, nil
}
