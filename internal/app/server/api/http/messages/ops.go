package messages

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"dataapi/internal/app/server/api/http/middleware"
	"dataapi/internal/app/server/api/http/middleware/query"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "messages-create",
		Method:        http.MethodPost,
		Path:          "/messages",
		Summary:       "Create a message",
		Tags:          []string{"messages"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   middleware.With(h.middleware, query.Strict("text", "author_id", "timestamp")),
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID:   "messages-list",
		Method:        http.MethodGet,
		Path:          "/messages",
		Summary:       "List a window of messages",
		Description:   "Returns the messages around index in timestamp order and the collection size.",
		Tags:          []string{"messages"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   middleware.With(h.middleware, query.Strict("index", "vector")),
	}
}
