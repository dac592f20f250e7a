package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"vidtube/internal/apierr"
	"vidtube/internal/middleware"
	"vidtube/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// pathID parses a UUID path variable. A malformed id is a validation
// error checked before any store access.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, apierr.Validation("Invalid " + name)
	}
	return id, nil
}

// caller returns the authenticated user injected by the auth middleware.
func caller(r *http.Request) (*models.User, error) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		return nil, apierr.Auth("Authentication required")
	}
	return user, nil
}

// pagination reads page/limit query params with sane defaults and caps.
func pagination(r *http.Request) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
