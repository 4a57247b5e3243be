package users

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"dataapi/internal/app/server/api/http/apierr"
	"dataapi/internal/app/server/api/http/middleware/query"
	"dataapi/internal/domain/collection"
)

type Handler struct {
	service    collection.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service collection.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	fields := query.Supplied(map[string]string{
		"username":      input.Username,
		"password_hash": input.PasswordHash,
	})

	id, err := h.service.Insert(ctx, collection.Users, fields, input.Timestamp)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &createOutput{Body: UserCreateResponse{ID: id}}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	params := query.Supplied(map[string]string{
		collection.ParamIndex:  input.Index,
		collection.ParamVector: input.Vector,
		collection.ParamSort:   input.Sort,
	})

	page, err := h.service.List(ctx, collection.Users, params)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	users := make([]User, len(page.Items))
	for i, rec := range page.Items {
		users[i] = toUser(rec)
	}

	return &listOutput{
		Body: UserListResponse{TotalLength: page.Total, Array: users},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Find(ctx, collection.Users, input.Username)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}
	return &findOutput{Body: toUser(rec)}, nil
}

func toUser(rec collection.Record) User {
	return User{
		ID:           rec.ID,
		Username:     rec.Fields["username"],
		PasswordHash: rec.Fields["password_hash"],
		Timestamp:    rec.Timestamp,
	}
}
