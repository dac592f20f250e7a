package handlers

import (
	"net/http"

	"vidtube/internal/db"
	"vidtube/pkg/tasks"
)

type Handlers struct {
	store       *db.Store
	asynqClient tasks.TaskEnqueuer
}

func New(store *db.Store, asynqClient tasks.TaskEnqueuer) *Handlers {
	return &Handlers{
		store:       store,
		asynqClient: asynqClient,
	}
}

// Healthcheck pings the store and reports liveness.
func (h *Handlers) Healthcheck(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
