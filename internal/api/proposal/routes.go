package proposal

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers proposal routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/proposal", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/generate/file", h.GenerateFromFile)
		r.Post("/enrich", h.Enrich)
		r.Get("/sessions/stats", h.SessionStats)

		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", h.GetProposal)
			r.Get("/result", h.GetProposalResult)
		})
	})

	r.Post("/branding/extract", h.ExtractBranding)
}
