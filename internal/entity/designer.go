package entity

// FinalProposal is the designed proposal: the enriched content plus one
// chosen variant per section and the two fixed sections (why-us, contact).
type FinalProposal struct {
	ExecutiveSummary        string  `json:"executiveSummary"`
	ExecutiveSummaryVariant Variant `json:"executiveSummaryVariant"`

	Needs        []string `json:"needs"`
	NeedsVariant Variant  `json:"needsVariant"`

	Solution        string        `json:"solution"`
	SolutionVariant Variant       `json:"solutionVariant"`
	BusinessCase    *BusinessCase `json:"businessCase,omitempty"`
	TechStack       *TechStack    `json:"techStack,omitempty"`

	Features        []Feature `json:"features"`
	FeaturesVariant Variant   `json:"featuresVariant"`

	Roadmap        []RoadmapItem `json:"roadmap"`
	RoadmapVariant Variant       `json:"roadmapVariant"`

	Pricing        *PricingSection `json:"pricing"`
	PricingVariant Variant         `json:"pricingVariant"`

	WhyUs        string  `json:"whyUs"`
	WhyUsVariant Variant `json:"whyUsVariant"`

	Contact        ContactInfo `json:"contact"`
	ContactVariant Variant     `json:"contactVariant"`
}

// Content returns the underlying proposal content without variant choices.
func (p *FinalProposal) Content() ProposalContent {
	return ProposalContent{
		ExecutiveSummary: p.ExecutiveSummary,
		Needs:            p.Needs,
		Solution:         p.Solution,
		BusinessCase:     p.BusinessCase,
		TechStack:        p.TechStack,
		Features:         p.Features,
		Roadmap:          p.Roadmap,
		Pricing:          p.Pricing,
	}
}

// DesignerOutput is the validated result of the designer stage.
type DesignerOutput struct {
	Proposal         FinalProposal     `json:"proposal"`
	VariantReasoning map[string]string `json:"variantReasoning"`
}
