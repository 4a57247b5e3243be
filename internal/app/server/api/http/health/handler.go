package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dataapi/internal/app/server/api/http/apierr"
	"dataapi/internal/domain/collection"
)

// Checker reports collection sizes; it fails when the store is unreachable.
type Checker interface {
	Counts(ctx context.Context) (map[collection.Name]int, error)
}

type Handler struct {
	checker    Checker
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(checker Checker, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		checker:    checker,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	counts, err := h.checker.Counts(ctx)
	if err != nil {
		h.log.Error("health check failed", "error", err)
		return nil, apierr.New(http.StatusServiceUnavailable, "storage unavailable")
	}

	collections := make(map[string]int, len(counts))
	for name, n := range counts {
		collections[string(name)] = n
	}

	return &Output{
		Body: Response{
			Status:      "OK",
			Collections: collections,
		},
	}, nil
}
