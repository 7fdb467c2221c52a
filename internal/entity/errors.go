package entity

import (
	"errors"
	"fmt"
)

// Stage labels used in errors reported from LLM hand-off boundaries.
const (
	StageParser     = "parser"
	StageEnrichment = "enrichment"
	StageDesigner   = "designer"
)

// Domain errors
var (
	// Caller input errors
	ErrDocumentTooShort = errors.New("document is too short to generate a proposal")
	ErrDocumentTooLong  = errors.New("document exceeds maximum length")
	ErrMessageEmpty     = errors.New("message must not be empty")
	ErrMessageTooLong   = errors.New("message exceeds maximum length")
	ErrInvalidSessionID = errors.New("invalid session id format")
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")

	// Session errors
	ErrSessionNotFound = errors.New("enrichment session not found or expired")

	// Conversation errors
	ErrTranscriptTooLong = errors.New("conversation transcript exceeds context budget")

	// Archive errors
	ErrProposalNotFound = errors.New("proposal not found")
)

// ProviderError wraps a failed LLM provider call with the stage it happened in.
type ProviderError struct {
	Stage string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s stage provider call failed: %v", e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
