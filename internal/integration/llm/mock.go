package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

// MockClient returns a canned completion for its stage. Used for local
// development without provider credentials.
type MockClient struct {
	stage    string
	response string
	logger   *zap.Logger
}

func NewMockClient(stage string, logger *zap.Logger) *MockClient {
	return &MockClient{
		stage:    stage,
		response: mockResponses[stage],
		logger:   logger,
	}
}

func (m *MockClient) Complete(ctx context.Context, system string, messages []entity.ChatMessage) (string, error) {
	ctxzap.Info(ctx, "[MOCK] LLM completion",
		zap.String("stage", m.stage),
		zap.Int("message_count", len(messages)),
	)

	return m.response, nil
}

var mockResponses = map[string]string{
	entity.StageParser: "```json\n" + mockParserJSON + "\n```",
	entity.StageEnrichment: "Thanks, that covers everything. All sections are now complete and we are ready to pass to the designer.\n\n" +
		"```json\n" + mockContentJSON + "\n```",
	entity.StageDesigner: "```json\n" + mockDesignerJSON + "\n```",
}

const mockContentJSON = `{
  "executiveSummary": "Acme Logistics needs a real-time shipment tracking platform. We propose a phased delivery starting with a tracking MVP in eight weeks.",
  "needs": [
    "Real-time visibility over 2000 daily shipments",
    "Automated customer notifications",
    "Integration with the existing SAP backend"
  ],
  "solution": "A cloud tracking platform with event ingestion from carrier APIs, a notification engine and an SAP integration layer.",
  "features": [
    {"title": "Live tracking map", "description": "Shipment positions updated in real time", "icon": "map"},
    {"title": "Notification engine", "description": "Email and SMS alerts on delivery milestones", "icon": "bell"}
  ],
  "roadmap": [
    {"phase": "Discovery", "date": "Weeks 1-2", "description": "Requirements and carrier API audit", "deliverables": ["Technical blueprint"]},
    {"phase": "MVP", "date": "Weeks 3-8", "description": "Tracking core and notification engine", "deliverables": ["Production MVP"]}
  ],
  "pricing": {
    "tiers": [
      {"name": "MVP", "price": "$48,000", "period": "one-time", "features": ["Tracking core", "Notifications"], "recommended": true},
      {"name": "Full platform", "price": "$95,000", "period": "one-time", "features": ["MVP scope", "SAP integration", "Analytics"]}
    ]
  }
}`

const mockParserJSON = `{
  "content": ` + mockContentJSON + `,
  "completeness": {
    "executiveSummary": "complete",
    "needs": "complete",
    "solution": "complete",
    "features": "complete",
    "roadmap": "complete",
    "pricing": "complete"
  },
  "overall": "complete",
  "missingOrWeak": []
}`

const mockDesignerJSON = `{
  "proposal": {
    "executiveSummary": "Acme Logistics needs a real-time shipment tracking platform. We propose a phased delivery starting with a tracking MVP in eight weeks.",
    "executiveSummaryVariant": "brief",
    "needs": [
      "Real-time visibility over 2000 daily shipments",
      "Automated customer notifications",
      "Integration with the existing SAP backend"
    ],
    "needsVariant": "cards",
    "solution": "A cloud tracking platform with event ingestion from carrier APIs, a notification engine and an SAP integration layer.",
    "solutionVariant": "structured",
    "features": [
      {"title": "Live tracking map", "description": "Shipment positions updated in real time", "icon": "map"},
      {"title": "Notification engine", "description": "Email and SMS alerts on delivery milestones", "icon": "bell"}
    ],
    "featuresVariant": "grid",
    "roadmap": [
      {"phase": "Discovery", "date": "Weeks 1-2", "description": "Requirements and carrier API audit", "deliverables": ["Technical blueprint"]},
      {"phase": "MVP", "date": "Weeks 3-8", "description": "Tracking core and notification engine", "deliverables": ["Production MVP"]}
    ],
    "roadmapVariant": "timeline",
    "pricing": {
      "tiers": [
        {"name": "MVP", "price": "$48,000", "period": "one-time", "features": ["Tracking core", "Notifications"], "recommended": true},
        {"name": "Full platform", "price": "$95,000", "period": "one-time", "features": ["MVP scope", "SAP integration", "Analytics"]}
      ]
    },
    "pricingVariant": "tiers",
    "whyUs": "",
    "whyUsVariant": "list",
    "contact": {
      "name": "", "role": "", "email": "", "phone": "", "website": "", "linkedin": "", "calendly": null, "cta": ""
    },
    "contactVariant": "standard"
  },
  "variantReasoning": {
    "executiveSummary": "Short summary reads best as a brief block",
    "needs": "Three needs map naturally onto cards",
    "solution": "Architecture description benefits from structure",
    "features": "Two features with icons fit a grid",
    "roadmap": "Phased delivery is a timeline",
    "pricing": "Two tiers with a recommended option"
  }
}`
