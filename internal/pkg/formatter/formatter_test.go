package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tractis/proposal-engine/internal/entity"
)

func testRecord() *entity.ProposalRecord {
	return &entity.ProposalRecord{
		Slug:  "acme-logistics",
		Token: "abc123def4",
		Client: entity.Client{
			Name: "Acme Logistics",
		},
		Proposal: entity.FinalProposal{
			ExecutiveSummary: "A tracking platform for Acme.",
			Needs:            []string{"Real-time visibility"},
			Solution:         "Cloud platform with carrier integrations.",
			Features: []entity.Feature{
				{Title: "Live map", Description: "Positions in real time"},
			},
			Roadmap: []entity.RoadmapItem{
				{Phase: "MVP", Date: "Weeks 1-8", Description: "Core build", Deliverables: []string{"Production MVP"}},
			},
			Pricing: &entity.PricingSection{
				Tiers: []entity.PricingTier{
					{Name: "MVP", Price: "$48,000", Recommended: true, Features: []string{"Tracking core"}},
				},
			},
			WhyUs: "## Why Us\n\nBecause we deliver.",
			Contact: entity.ContactInfo{
				Name:  "Gerhard Neumann",
				Role:  "Founder & CEO",
				Email: "gerhard@tractis.ai",
			},
		},
		VariantReasoning: map[string]string{"executiveSummary": "short"},
	}
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	tests := []struct {
		format      entity.ResultFormat
		contentType string
		extension   string
	}{
		{entity.FormatMarkdown, "text/markdown; charset=utf-8", ".md"},
		{entity.FormatJSON, "application/json", ".json"},
		{entity.FormatPDF, "application/pdf", ".pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := factory.Create(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, f.ContentType())
			assert.Equal(t, tt.extension, f.FileExtension())
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := factory.Create(entity.ResultFormat("docx"))
		assert.ErrorIs(t, err, entity.ErrInvalidFormat)
	})
}

func TestMarkdownFormatter(t *testing.T) {
	data, err := NewMarkdownFormatter().Format(testRecord())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Proposal for Acme Logistics")
	assert.Contains(t, md, "## Executive Summary")
	assert.Contains(t, md, "- Real-time visibility")
	assert.Contains(t, md, "### MVP (Weeks 1-8)")
	assert.Contains(t, md, "- Production MVP")
	assert.Contains(t, md, "### MVP (recommended)")
	assert.Contains(t, md, "$48,000")
	assert.Contains(t, md, "## Why Us")
	assert.Contains(t, md, "**Gerhard Neumann**, Founder & CEO")
}

func TestMarkdownFormatter_NoClientName(t *testing.T) {
	rec := testRecord()
	rec.Client.Name = ""

	data, err := NewMarkdownFormatter().Format(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Proposal\n")
}

func TestJSONFormatter(t *testing.T) {
	data, err := NewJSONFormatter().Format(testRecord())
	require.NoError(t, err)

	var rec entity.ProposalRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "acme-logistics", rec.Slug)
	assert.Equal(t, "A tracking platform for Acme.", rec.Proposal.ExecutiveSummary)
}
