package messages

import (
	"context"
	"strconv"

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
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	fields := query.Supplied(map[string]string{
		"text":      input.Text,
		"author_id": input.AuthorID,
	})

	id, err := h.service.Insert(ctx, collection.Messages, fields, input.Timestamp)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	return &createOutput{Body: MessageCreateResponse{ID: id}}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	params := query.Supplied(map[string]string{
		collection.ParamIndex:  input.Index,
		collection.ParamVector: input.Vector,
	})

	page, err := h.service.List(ctx, collection.Messages, params)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	messages := make([]Message, len(page.Items))
	for i, rec := range page.Items {
		messages[i] = toMessage(rec)
	}

	return &listOutput{
		Body: MessageListResponse{TotalLength: page.Total, Array: messages},
	}, nil
}

func toMessage(rec collection.Record) Message {
	// author_id is validated as an integer on insert.
	authorID, _ := strconv.ParseInt(rec.Fields["author_id"], 10, 64)
	return Message{
		ID:        rec.ID,
		Text:      rec.Fields["text"],
		AuthorID:  authorID,
		Timestamp: rec.Timestamp,
	}
}
