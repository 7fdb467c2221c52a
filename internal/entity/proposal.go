package entity

import "encoding/json"

// Section names tracked by the parser for completeness grading.
const (
	SectionExecutiveSummary = "executiveSummary"
	SectionNeeds            = "needs"
	SectionSolution         = "solution"
	SectionFeatures         = "features"
	SectionRoadmap          = "roadmap"
	SectionPricing          = "pricing"
)

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type RoadmapItem struct {
	Phase        string   `json:"phase"`
	Date         string   `json:"date"`
	Description  string   `json:"description"`
	Deliverables []string `json:"deliverables,omitempty"`
}

type PricingTier struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period,omitempty"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended,omitempty"`
}

// PricingSection holds either structured tiers or a free-text note.
type PricingSection struct {
	Tiers      []PricingTier `json:"tiers,omitempty"`
	CustomNote string        `json:"customNote,omitempty"`
}

// UnmarshalJSON accepts both the structured object form and a bare string,
// which models emit when pricing was given as prose.
func (p *PricingSection) UnmarshalJSON(data []byte) error {
	var note string
	if err := json.Unmarshal(data, &note); err == nil {
		p.CustomNote = note
		return nil
	}

	type alias PricingSection
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*p = PricingSection(obj)
	return nil
}

// MetricBreakdown is a headline value plus the calculation steps behind it.
type MetricBreakdown struct {
	Value     string   `json:"value"`
	Breakdown []string `json:"breakdown,omitempty"`
}

type BusinessCaseMetric struct {
	Label     string   `json:"label"`
	Value     string   `json:"value"`
	Breakdown []string `json:"breakdown,omitempty"`
}

type BusinessCase struct {
	CostSaving       *MetricBreakdown     `json:"costSaving,omitempty"`
	AdditionalIncome *MetricBreakdown     `json:"additionalIncome,omitempty"`
	ROI              *MetricBreakdown     `json:"roi,omitempty"`
	Metrics          []BusinessCaseMetric `json:"metrics,omitempty"`
}

type TechStackCategory struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
}

type TechStack struct {
	Categories []TechStackCategory `json:"categories"`
}

type ContactInfo struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	LinkedIn string  `json:"linkedin"`
	Calendly *string `json:"calendly"`
	CTA      string  `json:"cta"`
}

// ProposalContent is the canonical structured payload produced by the parser
// and refined by enrichment. BusinessCase and TechStack are optional and
// validated best-effort only.
type ProposalContent struct {
	ExecutiveSummary string          `json:"executiveSummary"`
	Needs            []string        `json:"needs"`
	Solution         string          `json:"solution"`
	BusinessCase     *BusinessCase   `json:"businessCase,omitempty"`
	TechStack        *TechStack      `json:"techStack,omitempty"`
	Features         []Feature       `json:"features"`
	Roadmap          []RoadmapItem   `json:"roadmap"`
	Pricing          *PricingSection `json:"pricing"`
}

// BrandPalette is the output of the external design-extraction service.
type BrandPalette struct {
	Colors  []string `json:"colors"`
	Favicon string   `json:"favicon,omitempty"`
}

// Client is the customer a proposal is addressed to.
type Client struct {
	Name    string        `json:"name"`
	Website string        `json:"website,omitempty"`
	Palette *BrandPalette `json:"palette,omitempty"`
}
