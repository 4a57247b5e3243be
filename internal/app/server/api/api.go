// POST /users              # create a user (409 on a taken username)
// GET  /users              # window of users: index, vector, sort
// GET  /users/{username}   # look a user up
// POST /messages           # create a message
// GET  /messages           # window of messages: index, vector
// GET  /api/v1/health      # store reachability and collection sizes

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	healthAPI "dataapi/internal/app/server/api/http/health"
	messagesAPI "dataapi/internal/app/server/api/http/messages"
	"dataapi/internal/app/server/api/http/middleware"
	"dataapi/internal/app/server/api/http/middleware/logger"
	usersAPI "dataapi/internal/app/server/api/http/users"
	"dataapi/internal/domain/collection"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Users    *usersAPI.Handler
	Messages *messagesAPI.Handler
}

// New builds the router with every operation registered through huma.
func New(repo collection.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Data API", "1.0.0")
	// Keep response bodies to the documented shape, without a $schema link.
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Users.SetupRoutes(API)
	h.Messages.SetupRoutes(API)

	return mux
}

func handlers(repo collection.Repository, log *slog.Logger) *Handlers {
	service := collection.NewService(repo, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	usersHandler := usersAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	messagesHandler := messagesAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Users:    usersHandler,
		Messages: messagesHandler,
	}
}
