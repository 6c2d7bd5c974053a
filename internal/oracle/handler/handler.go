//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	emodels "augur/internal/entropy/models"
	"augur/internal/oracle/models"
	dErrors "augur/pkg/domain-errors"
	"augur/pkg/platform/httputil"
)

// Service defines the oracle operations the handler serves.
type Service interface {
	DrawIndex(ctx context.Context, limit int) emodels.DrawResult
	GenerateThought(ctx context.Context) models.Thought
	GenerateToken(ctx context.Context) models.Token
}

// Handler wires oracle endpoints to the oracle service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts oracle endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleThought)
	r.Get("/heartbeat", h.HandleHeartbeat)
	r.Get("/token", h.HandleToken)
	r.Get("/draw", h.HandleDraw)
}

// HandleThought handles GET / requests.
func (h *Handler) HandleThought(w http.ResponseWriter, r *http.Request) {
	thought := h.service.GenerateThought(r.Context())
	httputil.WriteJSON(w, http.StatusOK, ThoughtResponse{
		Message: thought.Message,
		Source:  string(thought.Source),
	})
}

func (h *Handler) HandleHeartbeat(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HeartbeatResponse{Status: "alive"})
}

// HandleToken handles GET /token requests.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	token := h.service.GenerateToken(r.Context())
	httputil.WriteJSON(w, http.StatusOK, TokenResponse{
		Token:  token.Token,
		Source: string(token.Source),
	})
}

// HandleDraw handles GET /draw?limit=N requests.
func (h *Handler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Limits of 1 or less are valid and resolve to index 0, DETERMINISTIC.
	raw := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.DebugContext(ctx, "rejected draw request", "limit", raw)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "limit must be an integer"))
		return
	}

	res := h.service.DrawIndex(ctx, limit)
	httputil.WriteJSON(w, http.StatusOK, DrawResponse{
		Index:  res.Index,
		Source: string(res.Provenance),
	})
}
