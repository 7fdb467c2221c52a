package agent

import (
	_ "embed"
)

// System prompts are compiled into the binary so a deployment cannot lose
// them. They are the contract between the pipeline and the models; changing
// one changes what the schema validator must accept.

//go:embed prompts/parser.md
var parserPrompt string

//go:embed prompts/enrichment.md
var enrichmentPrompt string

//go:embed prompts/designer.md
var designerPrompt string
