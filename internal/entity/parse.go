package entity

// SectionVerdict grades how well a section is covered by the source document.
type SectionVerdict string

const (
	VerdictComplete SectionVerdict = "complete"
	VerdictWeak     SectionVerdict = "weak"
	VerdictMissing  SectionVerdict = "missing"
)

func (v SectionVerdict) IsValid() bool {
	switch v {
	case VerdictComplete, VerdictWeak, VerdictMissing:
		return true
	}
	return false
}

// OverallVerdict is the parser's self-reported aggregate over all sections.
type OverallVerdict string

const (
	OverallComplete   OverallVerdict = "complete"
	OverallIncomplete OverallVerdict = "incomplete"
)

func (v OverallVerdict) IsValid() bool {
	return v == OverallComplete || v == OverallIncomplete
}

// SectionVerdicts carries one verdict per tracked section.
type SectionVerdicts struct {
	ExecutiveSummary SectionVerdict `json:"executiveSummary"`
	Needs            SectionVerdict `json:"needs"`
	Solution         SectionVerdict `json:"solution"`
	Features         SectionVerdict `json:"features"`
	Roadmap          SectionVerdict `json:"roadmap"`
	Pricing          SectionVerdict `json:"pricing"`
}

// AsMap returns the verdicts keyed by section name.
func (s SectionVerdicts) AsMap() map[string]SectionVerdict {
	return map[string]SectionVerdict{
		SectionExecutiveSummary: s.ExecutiveSummary,
		SectionNeeds:            s.Needs,
		SectionSolution:         s.Solution,
		SectionFeatures:         s.Features,
		SectionRoadmap:          s.Roadmap,
		SectionPricing:          s.Pricing,
	}
}

// MissingOrWeakItem names a section the enrichment conversation must fix.
type MissingOrWeakItem struct {
	Section string         `json:"section"`
	Status  SectionVerdict `json:"status"`
	Reason  string         `json:"reason"`
}

// ParserOutput is the validated result of the parser stage. Overall is
// self-reported by the model and deliberately not re-derived from the
// per-section verdicts.
type ParserOutput struct {
	Content       ProposalContent     `json:"content"`
	Completeness  SectionVerdicts     `json:"completeness"`
	Overall       OverallVerdict      `json:"overall"`
	MissingOrWeak []MissingOrWeakItem `json:"missingOrWeak,omitempty"`
}
