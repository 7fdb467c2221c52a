package schema

import (
	"fmt"
	"strings"

	"github.com/tractis/proposal-engine/internal/entity"
)

// ParseParserOutput validates raw parser-stage output against the parser
// contract: 6 content sections, per-section verdict enums, overall verdict
// and the optional gap list. Content sections may still be empty here; the
// verdicts say which of them are.
func ParseParserOutput(raw string) (*entity.ParserOutput, error) {
	return decode(entity.StageParser, raw, validateParserOutput)
}

// ParseEnrichedContent validates raw enrichment-stage output against the
// enriched-content contract. Unlike the parser boundary, core sections must
// be present and non-empty: enrichment only completes with usable content.
func ParseEnrichedContent(raw string) (*entity.ProposalContent, error) {
	return decode(entity.StageEnrichment, raw, validateEnrichedContent)
}

// ParseDesignerOutput validates raw designer-stage output: the full proposal
// with one variant identifier per section, each from its closed set, plus a
// reasoning map keyed by section name.
func ParseDesignerOutput(raw string) (*entity.DesignerOutput, error) {
	return decode(entity.StageDesigner, raw, validateDesignerOutput)
}

func validateParserOutput(out *entity.ParserOutput) []Violation {
	var v []Violation

	v = append(v, contentShapeViolations("content", &out.Content)...)

	for section, verdict := range out.Completeness.AsMap() {
		if !verdict.IsValid() {
			v = append(v, Violation{
				Path:     "completeness." + section,
				Expected: "complete|weak|missing",
				Actual:   string(verdict),
			})
		}
	}

	if !out.Overall.IsValid() {
		v = append(v, Violation{Path: "overall", Expected: "complete|incomplete", Actual: string(out.Overall)})
	}

	for i, item := range out.MissingOrWeak {
		path := fmt.Sprintf("missingOrWeak[%d]", i)
		if item.Section == "" {
			v = append(v, Violation{Path: path + ".section", Expected: "non-empty string", Actual: "empty"})
		}
		if item.Status != entity.VerdictWeak && item.Status != entity.VerdictMissing {
			v = append(v, Violation{Path: path + ".status", Expected: "weak|missing", Actual: string(item.Status)})
		}
		if item.Reason == "" {
			v = append(v, Violation{Path: path + ".reason", Expected: "non-empty string", Actual: "empty"})
		}
	}

	return v
}

// contentShapeViolations checks that the required collections exist without
// demanding non-empty section text; at parse time a section may legitimately
// be missing and flagged by its verdict.
func contentShapeViolations(prefix string, c *entity.ProposalContent) []Violation {
	var v []Violation
	if c.Needs == nil {
		v = append(v, Violation{Path: prefix + ".needs", Expected: "array of strings", Actual: "absent"})
	}
	if c.Features == nil {
		v = append(v, Violation{Path: prefix + ".features", Expected: "array of features", Actual: "absent"})
	}
	if c.Roadmap == nil {
		v = append(v, Violation{Path: prefix + ".roadmap", Expected: "array of roadmap items", Actual: "absent"})
	}
	return v
}

func validateEnrichedContent(c *entity.ProposalContent) []Violation {
	var v []Violation

	if strings.TrimSpace(c.ExecutiveSummary) == "" {
		v = append(v, Violation{Path: "executiveSummary", Expected: "non-empty string", Actual: "empty"})
	}
	if len(c.Needs) == 0 {
		v = append(v, Violation{Path: "needs", Expected: "non-empty array of strings", Actual: "absent or empty"})
	}
	for i, need := range c.Needs {
		if strings.TrimSpace(need) == "" {
			v = append(v, Violation{Path: fmt.Sprintf("needs[%d]", i), Expected: "non-empty string", Actual: "empty"})
		}
	}
	if strings.TrimSpace(c.Solution) == "" {
		v = append(v, Violation{Path: "solution", Expected: "non-empty string", Actual: "empty"})
	}

	if c.Features == nil {
		v = append(v, Violation{Path: "features", Expected: "array of features", Actual: "absent"})
	}
	for i, f := range c.Features {
		path := fmt.Sprintf("features[%d]", i)
		if f.Title == "" {
			v = append(v, Violation{Path: path + ".title", Expected: "non-empty string", Actual: "empty"})
		}
		if f.Description == "" {
			v = append(v, Violation{Path: path + ".description", Expected: "non-empty string", Actual: "empty"})
		}
	}

	if c.Roadmap == nil {
		v = append(v, Violation{Path: "roadmap", Expected: "array of roadmap items", Actual: "absent"})
	}
	for i, r := range c.Roadmap {
		path := fmt.Sprintf("roadmap[%d]", i)
		if r.Phase == "" {
			v = append(v, Violation{Path: path + ".phase", Expected: "non-empty string", Actual: "empty"})
		}
		if r.Date == "" {
			v = append(v, Violation{Path: path + ".date", Expected: "non-empty string", Actual: "empty"})
		}
		if r.Description == "" {
			v = append(v, Violation{Path: path + ".description", Expected: "non-empty string", Actual: "empty"})
		}
	}

	if c.Pricing == nil {
		v = append(v, Violation{Path: "pricing", Expected: "tiers or custom note", Actual: "absent"})
	} else if len(c.Pricing.Tiers) == 0 && c.Pricing.CustomNote == "" {
		v = append(v, Violation{Path: "pricing", Expected: "tiers or custom note", Actual: "empty object"})
	}

	if c.TechStack != nil {
		for i, cat := range c.TechStack.Categories {
			if cat.Name == "" {
				v = append(v, Violation{Path: fmt.Sprintf("techStack.categories[%d].name", i), Expected: "non-empty string", Actual: "empty"})
			}
		}
	}

	return v
}

func validateDesignerOutput(out *entity.DesignerOutput) []Violation {
	p := &out.Proposal
	content := p.Content()
	v := validateEnrichedContent(&content)
	for i := range v {
		v[i].Path = "proposal." + v[i].Path
	}

	variants := map[string]entity.Variant{
		entity.SectionExecutiveSummary: p.ExecutiveSummaryVariant,
		entity.SectionNeeds:            p.NeedsVariant,
		entity.SectionSolution:         p.SolutionVariant,
		entity.SectionFeatures:         p.FeaturesVariant,
		entity.SectionRoadmap:          p.RoadmapVariant,
		entity.SectionPricing:          p.PricingVariant,
		entity.SectionWhyUs:            p.WhyUsVariant,
		entity.SectionContact:          p.ContactVariant,
	}
	for section, variant := range variants {
		if !entity.ValidVariant(section, variant) {
			v = append(v, Violation{
				Path:     "proposal." + section + "Variant",
				Expected: variantSetString(section),
				Actual:   string(variant),
			})
		}
	}

	if p.Contact.Email != "" && !strings.Contains(p.Contact.Email, "@") {
		v = append(v, Violation{Path: "proposal.contact.email", Expected: "email address", Actual: p.Contact.Email})
	}

	if out.VariantReasoning == nil {
		v = append(v, Violation{Path: "variantReasoning", Expected: "map of section to reasoning", Actual: "absent"})
	}

	return v
}

func variantSetString(section string) string {
	set := entity.VariantsFor(section)
	parts := make([]string, len(set))
	for i, s := range set {
		parts[i] = string(s)
	}
	return "one of " + strings.Join(parts, "|")
}
