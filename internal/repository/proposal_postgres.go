package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tractis/proposal-engine/internal/entity"
)

// ProposalRepository archives finished proposals in Postgres.
type ProposalRepository struct {
	pool *pgxpool.Pool
}

func NewProposalRepository(pool *pgxpool.Pool) *ProposalRepository {
	return &ProposalRepository{pool: pool}
}

// Create inserts an archived proposal and fills in the generated id and
// timestamps.
func (r *ProposalRepository) Create(ctx context.Context, rec *entity.ProposalRecord) error {
	clientJSON, err := json.Marshal(rec.Client)
	if err != nil {
		return fmt.Errorf("marshal client: %w", err)
	}
	proposalJSON, err := json.Marshal(rec.Proposal)
	if err != nil {
		return fmt.Errorf("marshal proposal: %w", err)
	}
	reasoningJSON, err := json.Marshal(rec.VariantReasoning)
	if err != nil {
		return fmt.Errorf("marshal variant reasoning: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO proposals (slug, token, client, proposal, variant_reasoning)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, rec.Slug, rec.Token, clientJSON, proposalJSON, reasoningJSON)

	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}

	return nil
}

// GetBySlug returns the archived proposal with the given slug.
func (r *ProposalRepository) GetBySlug(ctx context.Context, slug string) (*entity.ProposalRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, slug, token, client, proposal, variant_reasoning, created_at, updated_at
		FROM proposals
		WHERE slug = $1
	`, slug)

	return scanProposal(row)
}

// SlugExists reports whether a slug is already taken.
func (r *ProposalRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM proposals WHERE slug = $1)
	`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug existence: %w", err)
	}

	return exists, nil
}

func scanProposal(row pgx.Row) (*entity.ProposalRecord, error) {
	var rec entity.ProposalRecord
	var clientJSON, proposalJSON, reasoningJSON []byte

	err := row.Scan(
		&rec.ID,
		&rec.Slug,
		&rec.Token,
		&clientJSON,
		&proposalJSON,
		&reasoningJSON,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrProposalNotFound
		}
		return nil, fmt.Errorf("scan proposal: %w", err)
	}

	if err := json.Unmarshal(clientJSON, &rec.Client); err != nil {
		return nil, fmt.Errorf("unmarshal client: %w", err)
	}
	if err := json.Unmarshal(proposalJSON, &rec.Proposal); err != nil {
		return nil, fmt.Errorf("unmarshal proposal: %w", err)
	}
	if err := json.Unmarshal(reasoningJSON, &rec.VariantReasoning); err != nil {
		return nil, fmt.Errorf("unmarshal variant reasoning: %w", err)
	}

	return &rec, nil
}
