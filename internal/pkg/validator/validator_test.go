package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tractis/proposal-engine/internal/config"
	"github.com/tractis/proposal-engine/internal/entity"
)

func newTestValidator() *Validator {
	return NewValidator(config.LimitsConfig{
		MinDocumentChars:   50,
		MaxDocumentChars:   100000,
		MaxMessageChars:    10000,
		MaxTranscriptChars: 400000,
	})
}

func TestValidateGenerate(t *testing.T) {
	v := newTestValidator()

	t.Run("valid document", func(t *testing.T) {
		err := v.ValidateGenerate(&entity.GenerateProposalRequest{
			DocumentText: strings.Repeat("We need a shipment tracking platform. ", 10),
		})
		assert.NoError(t, err)
	})

	t.Run("missing document", func(t *testing.T) {
		err := v.ValidateGenerate(&entity.GenerateProposalRequest{})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("document too short", func(t *testing.T) {
		err := v.ValidateGenerate(&entity.GenerateProposalRequest{DocumentText: "too short"})
		assert.ErrorIs(t, err, entity.ErrDocumentTooShort)
	})

	t.Run("document too long", func(t *testing.T) {
		err := v.ValidateGenerate(&entity.GenerateProposalRequest{
			DocumentText: strings.Repeat("x", 100001),
		})
		assert.ErrorIs(t, err, entity.ErrDocumentTooLong)
	})
}

func TestValidateEnrich(t *testing.T) {
	v := newTestValidator()
	validID := "enrich_123e4567-e89b-42d3-a456-426614174000"

	t.Run("valid request", func(t *testing.T) {
		err := v.ValidateEnrich(&entity.EnrichProposalRequest{
			SessionID: validID,
			Message:   "Our budget is around $50k",
		})
		assert.NoError(t, err)
	})

	t.Run("missing session id", func(t *testing.T) {
		err := v.ValidateEnrich(&entity.EnrichProposalRequest{Message: "hello"})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("malformed session id", func(t *testing.T) {
		for _, id := range []string{
			"123e4567-e89b-42d3-a456-426614174000",
			"enrich_not-a-uuid",
			"enrich_123E4567-E89B-42D3-A456-426614174000",
			"session_123e4567-e89b-42d3-a456-426614174000",
		} {
			err := v.ValidateEnrich(&entity.EnrichProposalRequest{SessionID: id, Message: "hello"})
			assert.ErrorIs(t, err, entity.ErrInvalidSessionID, "id %q", id)
		}
	})

	t.Run("empty message", func(t *testing.T) {
		err := v.ValidateEnrich(&entity.EnrichProposalRequest{SessionID: validID})
		assert.ErrorIs(t, err, entity.ErrMessageEmpty)
	})

	t.Run("message too long", func(t *testing.T) {
		err := v.ValidateEnrich(&entity.EnrichProposalRequest{
			SessionID: validID,
			Message:   strings.Repeat("x", 10001),
		})
		assert.ErrorIs(t, err, entity.ErrMessageTooLong)
	})
}

func TestValidateExtractBranding(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.ValidateExtractBranding(&entity.ExtractBrandingRequest{URL: "https://acme.example"}))
	assert.ErrorIs(t, v.ValidateExtractBranding(&entity.ExtractBrandingRequest{}), entity.ErrMissingField)
}
