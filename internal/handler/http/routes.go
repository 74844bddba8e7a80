package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the complete HTTP handler: the trace id middleware around the
// interceptor pipeline, which ends in the route table.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()

	router.Get("/users", Handle(h.listUsers))
	router.Post("/users", Handle(h.createUser))
	router.Get("/users/{id}", Handle(h.getUser))
	router.Put("/users/{id}", Handle(h.updateUser))
	router.Delete("/users/{id}", Handle(h.deleteUser))

	router.Get("/version", Handle(h.getServerVersion))

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	pipeline := NewPipeline(Dispatch(router),
		errorContainment{},
		newTokenCheck(h.token),
		requestLogging{},
	)

	return h.withTraceID(pipeline)
}
