package users

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"dataapi/internal/app/server/api/http/middleware"
	"dataapi/internal/app/server/api/http/middleware/query"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create a user",
		Description:   "Stores a user. The username must not be in use yet.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
		Middlewares:   middleware.With(h.middleware, query.Strict("username", "password_hash", "timestamp")),
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-list",
		Method:        http.MethodGet,
		Path:          "/users",
		Summary:       "List a window of users",
		Description:   "Returns the users around index, ordered by the sort key, and the collection size.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusBadRequest},
		Middlewares:   middleware.With(h.middleware, query.Strict("index", "vector", "sort")),
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-find",
		Method:        http.MethodGet,
		Path:          "/users/{username}",
		Summary:       "Look a user up by username",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound},
		Middlewares:   middleware.With(h.middleware, query.Strict()),
	}
}
