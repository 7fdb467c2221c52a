package entity

import "time"

// GenerationStatus tags the GenerationResult union.
type GenerationStatus string

const (
	StatusComplete        GenerationStatus = "complete"
	StatusNeedsEnrichment GenerationStatus = "needs_enrichment"
)

type GenerateProposalRequest struct {
	DocumentText string `json:"documentText"`
	ClientName   string `json:"clientName,omitempty"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`
}

type EnrichProposalRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type ExtractBrandingRequest struct {
	URL string `json:"url"`
}

// GenerationResult is the tagged union returned by both entry points.
// Status "complete" carries Proposal and VariantReasoning; Slug is set when
// the proposal was archived. Status "needs_enrichment" carries SessionID and
// EnrichmentMessage.
type GenerationResult struct {
	Status GenerationStatus `json:"status"`

	SessionID         string `json:"sessionId,omitempty"`
	EnrichmentMessage string `json:"enrichmentMessage,omitempty"`

	Proposal         *FinalProposal    `json:"proposal,omitempty"`
	VariantReasoning map[string]string `json:"variantReasoning,omitempty"`
	Slug             string            `json:"slug,omitempty"`
}

type SessionStats struct {
	ActiveSessions    int     `json:"activeSessions"`
	SessionTTLMinutes float64 `json:"sessionTtlMinutes"`
}

// ExtractedDocument is the output of the external text-extraction service.
type ExtractedDocument struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Text     string `json:"text"`
	Length   int    `json:"length"`
}

// ProposalRecord is an archived, finished proposal.
type ProposalRecord struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	Token            string            `json:"token"`
	Client           Client            `json:"client"`
	Proposal         FinalProposal     `json:"proposal"`
	VariantReasoning map[string]string `json:"variantReasoning"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// ResultFormat selects the export format of an archived proposal.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatJSON     ResultFormat = "json"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatJSON, FormatPDF:
		return true
	}
	return false
}
