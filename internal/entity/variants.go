package entity

// Variant identifies the presentation component chosen for a section.
// Every section has its own closed set of valid identifiers; free strings
// would break the downstream component lookup, so the designer contract
// rejects anything outside the set.
type Variant string

// Default variants used for the fixed, non-AI sections.
const (
	DefaultWhyUsVariant   Variant = "list"
	DefaultContactVariant Variant = "standard"
)

var sectionVariants = map[string][]Variant{
	SectionExecutiveSummary: {"brief", "detailed", "visual", "timeline"},
	SectionNeeds:            {"list", "grid", "cards", "timeline"},
	SectionSolution:         {"narrative", "structured", "visual", "comparison"},
	SectionFeatures:         {"grid", "list", "showcase", "tabbed"},
	SectionRoadmap:          {"timeline", "phases", "gantt", "milestones"},
	SectionPricing:          {"tiers", "table", "custom", "simple"},
	SectionWhyUs:            {"list", "grid", "testimonial", "stats"},
	SectionContact:          {"standard", "card", "inline", "footer"},
}

// Fixed sections injected by the designer stage, never produced by an LLM.
const (
	SectionWhyUs   = "whyUs"
	SectionContact = "contact"
)

// ValidVariant reports whether v belongs to the closed variant set of the
// given section.
func ValidVariant(section string, v Variant) bool {
	for _, candidate := range sectionVariants[section] {
		if candidate == v {
			return true
		}
	}
	return false
}

// VariantsFor returns the closed variant set for a section.
func VariantsFor(section string) []Variant {
	return sectionVariants[section]
}
