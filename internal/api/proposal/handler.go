package proposal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/tractis/proposal-engine/internal/entity"
	"github.com/tractis/proposal-engine/internal/pkg/formatter"
	"github.com/tractis/proposal-engine/internal/pkg/logger"
	"github.com/tractis/proposal-engine/internal/pkg/response"
	"github.com/tractis/proposal-engine/internal/pkg/schema"
	"go.uber.org/zap"
)

// maxUploadSize bounds multipart document uploads (32 MiB).
const maxUploadSize = 32 << 20

type Handler struct {
	usecase    ProposalUsecase
	formatters *formatter.Factory
}

func NewHandler(usecase ProposalUsecase, formatters *formatter.Factory) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
	}
}

// Generate handles POST /proposal/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	var req entity.GenerateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.usecase.StartGeneration(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Enrich handles POST /proposal/enrich
func (h *Handler) Enrich(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Enrich")

	var req entity.EnrichProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.usecase.ContinueEnrichment(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GenerateFromFile handles POST /proposal/generate/file
func (h *Handler) GenerateFromFile(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateFromFile")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "document file is required", err)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}

	result, err := h.usecase.StartGenerationFromFile(
		ctx,
		fileData,
		header.Filename,
		r.FormValue("clientName"),
		r.FormValue("websiteUrl"),
	)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// ExtractBranding handles POST /branding/extract
func (h *Handler) ExtractBranding(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExtractBranding")

	var req entity.ExtractBrandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	palette, err := h.usecase.ExtractBranding(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, palette)
}

// SessionStats handles GET /proposal/sessions/stats
func (h *Handler) SessionStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SessionStats")

	stats := h.usecase.GetSessionStats(ctx)

	h.respondJSON(w, http.StatusOK, stats)
}

// GetProposal handles GET /proposal/{slug}
func (h *Handler) GetProposal(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProposal")

	slug := chi.URLParam(r, "slug")

	rec, err := h.usecase.GetProposal(ctx, slug)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, rec)
}

// GetProposalResult handles GET /proposal/{slug}/result?format=markdown|json|pdf
func (h *Handler) GetProposalResult(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetProposalResult")

	slug := chi.URLParam(r, "slug")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, fmt.Sprintf("unsupported format: %s", format), nil)
		return
	}

	rec, err := h.usecase.GetProposal(ctx, slug)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	f, err := h.formatters.Create(format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := f.Format(rec)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to format proposal", err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Slug+f.FileExtension()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.ErrorWithDetail(w, status, http.StatusText(status), message)
}

// handleUsecaseError maps workflow errors onto HTTP statuses. Anything the
// caller can fix is 400, an unknown or expired session is 404, and any LLM
// stage failure (provider, malformed output, contract violation) is 502 with
// the failing stage named in the message.
func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var malformedErr *schema.MalformedOutputError
	var violationErr *schema.SchemaViolationError
	var providerErr *entity.ProviderError

	switch {
	case errors.Is(err, entity.ErrDocumentTooShort),
		errors.Is(err, entity.ErrDocumentTooLong),
		errors.Is(err, entity.ErrMessageEmpty),
		errors.Is(err, entity.ErrMessageTooLong),
		errors.Is(err, entity.ErrInvalidSessionID),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFormat),
		errors.Is(err, entity.ErrTranscriptTooLong):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)

	case errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrProposalNotFound):
		h.respondError(ctx, w, http.StatusNotFound, err.Error(), err)

	case errors.As(err, &malformedErr):
		h.respondError(ctx, w, http.StatusBadGateway,
			fmt.Sprintf("%s stage returned malformed output", malformedErr.Agent), err)

	case errors.As(err, &violationErr):
		h.respondError(ctx, w, http.StatusBadGateway,
			fmt.Sprintf("%s stage returned invalid output structure", violationErr.Agent), err)

	case errors.As(err, &providerErr):
		h.respondError(ctx, w, http.StatusBadGateway,
			fmt.Sprintf("%s stage provider call failed", providerErr.Stage), err)

	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
