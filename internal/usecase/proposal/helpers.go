package proposal

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"go.uber.org/zap"
)

const (
	tokenLength      = 10
	tokenAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789"
	maxSlugAttempts  = 5
	defaultSlugBase  = "proposal"
	maxSlugBaseChars = 60
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// resolveClient builds the client descriptor from the request, fetching the
// brand palette when a website is given. Palette extraction is best-effort.
func (uc *ProposalUsecase) resolveClient(ctx context.Context, req *entity.GenerateProposalRequest) *entity.Client {
	if req.ClientName == "" && req.WebsiteURL == "" {
		return nil
	}

	client := &entity.Client{
		Name:    req.ClientName,
		Website: req.WebsiteURL,
	}

	if req.WebsiteURL != "" && uc.branding != nil {
		palette, err := uc.branding.ExtractPalette(ctx, req.WebsiteURL)
		if err != nil {
			ctxzap.Warn(ctx, "brand palette extraction failed, continuing without it",
				zap.String("url", req.WebsiteURL),
				zap.Error(err),
			)
		} else {
			client.Palette = palette
		}
	}

	return client
}

// archiveProposal stores the designed proposal under a unique slug.
func (uc *ProposalUsecase) archiveProposal(
	ctx context.Context,
	designed *entity.DesignerOutput,
	client *entity.Client,
) (*entity.ProposalRecord, error) {
	base := defaultSlugBase
	recClient := entity.Client{Name: "Client"}
	if client != nil {
		recClient = *client
		if client.Name != "" {
			base = slugify(client.Name)
		}
	}

	slug, err := uc.uniqueSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	rec := &entity.ProposalRecord{
		Slug:             slug,
		Token:            token,
		Client:           recClient,
		Proposal:         designed.Proposal,
		VariantReasoning: designed.VariantReasoning,
	}

	if err := uc.archive.Create(ctx, rec); err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "proposal archived",
		zap.String("slug", rec.Slug),
		zap.String("proposal_id", rec.ID),
	)

	return rec, nil
}

// uniqueSlug appends a random suffix until the slug is free. Collisions are
// rare; after a few attempts the error is surfaced rather than looping.
func (uc *ProposalUsecase) uniqueSlug(ctx context.Context, base string) (string, error) {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			suffix, err := randomString(4)
			if err != nil {
				return "", err
			}
			candidate = base + "-" + suffix
		}

		exists, err := uc.archive.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not find a free slug for %q", base)
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return defaultSlugBase
	}
	if len(slug) > maxSlugBaseChars {
		slug = strings.Trim(slug[:maxSlugBaseChars], "-")
	}
	return slug
}

func generateToken() (string, error) {
	return randomString(tokenLength)
}

func randomString(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random string: %w", err)
		}
		out[i] = tokenAlphabet[idx.Int64()]
	}
	return string(out), nil
}
