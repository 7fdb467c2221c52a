package validator

import (
	"fmt"
	"regexp"

	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
)

var sessionIDRe = regexp.MustCompile(`^enrich_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Validator validates caller input against configured limits
type Validator struct {
	cfg config.LimitsConfig
}

func NewValidator(cfg config.LimitsConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateGenerate validates a proposal generation request
func (v *Validator) ValidateGenerate(req *entity.GenerateProposalRequest) error {
	if req.DocumentText == "" {
		return fmt.Errorf("%w: documentText", entity.ErrMissingField)
	}
	if len(req.DocumentText) < v.cfg.MinDocumentChars {
		return fmt.Errorf("%w: got %d characters, need at least %d",
			entity.ErrDocumentTooShort, len(req.DocumentText), v.cfg.MinDocumentChars)
	}
	if len(req.DocumentText) > v.cfg.MaxDocumentChars {
		return fmt.Errorf("%w: got %d characters, maximum is %d",
			entity.ErrDocumentTooLong, len(req.DocumentText), v.cfg.MaxDocumentChars)
	}

	return nil
}

// ValidateEnrich validates an enrichment turn request
func (v *Validator) ValidateEnrich(req *entity.EnrichProposalRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId", entity.ErrMissingField)
	}
	if !sessionIDRe.MatchString(req.SessionID) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidSessionID, req.SessionID)
	}
	if req.Message == "" {
		return entity.ErrMessageEmpty
	}
	if len(req.Message) > v.cfg.MaxMessageChars {
		return fmt.Errorf("%w: got %d characters, maximum is %d",
			entity.ErrMessageTooLong, len(req.Message), v.cfg.MaxMessageChars)
	}

	return nil
}

// ValidateExtractBranding validates a branding extraction request
func (v *Validator) ValidateExtractBranding(req *entity.ExtractBrandingRequest) error {
	if req.URL == "" {
		return fmt.Errorf("%w: url", entity.ErrMissingField)
	}

	return nil
}
