package agent

import (
	"context"

	"github.com/tractis/proposal-engine/internal/entity"
)

// fakeClient records what it was asked and replies with canned responses,
// one per call.
type fakeClient struct {
	responses []string
	err       error

	systems []string
	calls   [][]entity.ChatMessage
}

func (f *fakeClient) Complete(_ context.Context, system string, messages []entity.ChatMessage) (string, error) {
	f.systems = append(f.systems, system)
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}

	idx := len(f.calls) - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func validContent() *entity.ProposalContent {
	return &entity.ProposalContent{
		ExecutiveSummary: "A tracking platform for Acme.",
		Needs:            []string{"Visibility"},
		Solution:         "Cloud platform with carrier integrations.",
		Features: []entity.Feature{
			{Title: "Map", Description: "Live positions"},
		},
		Roadmap: []entity.RoadmapItem{
			{Phase: "MVP", Date: "Weeks 1-8", Description: "Core build"},
		},
		Pricing: &entity.PricingSection{
			Tiers: []entity.PricingTier{{Name: "MVP", Price: "$48,000"}},
		},
	}
}

const validContentJSON = `{
  "executiveSummary": "A tracking platform for Acme.",
  "needs": ["Visibility"],
  "solution": "Cloud platform with carrier integrations.",
  "features": [{"title": "Map", "description": "Live positions"}],
  "roadmap": [{"phase": "MVP", "date": "Weeks 1-8", "description": "Core build"}],
  "pricing": {"tiers": [{"name": "MVP", "price": "$48,000"}]}
}`
