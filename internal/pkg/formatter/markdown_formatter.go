package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tractis/proposal-engine/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(rec *entity.ProposalRecord) ([]byte, error) {
	return []byte(renderMarkdown(rec)), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}

// renderMarkdown flattens a proposal into a markdown document. Also used as
// the text source for PDF export.
func renderMarkdown(rec *entity.ProposalRecord) string {
	p := &rec.Proposal
	var buf bytes.Buffer

	title := "Proposal"
	if rec.Client.Name != "" {
		title = fmt.Sprintf("Proposal for %s", rec.Client.Name)
	}
	fmt.Fprintf(&buf, "# %s\n\n", title)

	fmt.Fprintf(&buf, "## Executive Summary\n\n%s\n\n", p.ExecutiveSummary)

	buf.WriteString("## Needs\n\n")
	for _, need := range p.Needs {
		fmt.Fprintf(&buf, "- %s\n", need)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "## Solution\n\n%s\n\n", p.Solution)

	if p.BusinessCase != nil {
		buf.WriteString("## Business Case\n\n")
		writeMetric(&buf, "Cost saving", p.BusinessCase.CostSaving)
		writeMetric(&buf, "Additional income", p.BusinessCase.AdditionalIncome)
		writeMetric(&buf, "ROI", p.BusinessCase.ROI)
		for _, m := range p.BusinessCase.Metrics {
			fmt.Fprintf(&buf, "- **%s**: %s\n", m.Label, m.Value)
		}
		buf.WriteString("\n")
	}

	if p.TechStack != nil && len(p.TechStack.Categories) > 0 {
		buf.WriteString("## Tech Stack\n\n")
		for _, cat := range p.TechStack.Categories {
			fmt.Fprintf(&buf, "- **%s**: %s\n", cat.Name, strings.Join(cat.Technologies, ", "))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Features\n\n")
	for _, f := range p.Features {
		fmt.Fprintf(&buf, "- **%s**: %s\n", f.Title, f.Description)
	}
	buf.WriteString("\n")

	buf.WriteString("## Roadmap\n\n")
	for _, r := range p.Roadmap {
		fmt.Fprintf(&buf, "### %s (%s)\n\n%s\n", r.Phase, r.Date, r.Description)
		if len(r.Deliverables) > 0 {
			buf.WriteString("\nDeliverables:\n")
			for _, d := range r.Deliverables {
				fmt.Fprintf(&buf, "- %s\n", d)
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Pricing\n\n")
	if p.Pricing != nil {
		if p.Pricing.CustomNote != "" {
			fmt.Fprintf(&buf, "%s\n\n", p.Pricing.CustomNote)
		}
		for _, tier := range p.Pricing.Tiers {
			marker := ""
			if tier.Recommended {
				marker = " (recommended)"
			}
			fmt.Fprintf(&buf, "### %s%s\n\n%s", tier.Name, marker, tier.Price)
			if tier.Period != "" {
				fmt.Fprintf(&buf, " / %s", tier.Period)
			}
			buf.WriteString("\n\n")
			for _, feat := range tier.Features {
				fmt.Fprintf(&buf, "- %s\n", feat)
			}
			buf.WriteString("\n")
		}
	}

	if p.WhyUs != "" {
		fmt.Fprintf(&buf, "%s\n\n", p.WhyUs)
	}

	buf.WriteString("## Contact\n\n")
	c := &p.Contact
	fmt.Fprintf(&buf, "**%s**, %s\n\n", c.Name, c.Role)
	fmt.Fprintf(&buf, "- Email: %s\n- Phone: %s\n- Website: %s\n- LinkedIn: %s\n", c.Email, c.Phone, c.Website, c.LinkedIn)
	if c.Calendly != nil {
		fmt.Fprintf(&buf, "- Calendly: %s\n", *c.Calendly)
	}
	fmt.Fprintf(&buf, "\n%s\n", c.CTA)

	return buf.String()
}

func writeMetric(buf *bytes.Buffer, label string, m *entity.MetricBreakdown) {
	if m == nil {
		return
	}
	fmt.Fprintf(buf, "- **%s**: %s\n", label, m.Value)
	for _, step := range m.Breakdown {
		fmt.Fprintf(buf, "  - %s\n", step)
	}
}
