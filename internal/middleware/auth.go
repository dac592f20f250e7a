package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"vidtube/internal/db"
	"vidtube/internal/models"
)

type contextKey string

// UserContextKey is the key for the user in the context.
const UserContextKey = contextKey("user")

// UserFrom extracts the authenticated user from a request context.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok
}

// Auth validates the bearer token issued by the auth service and loads
// the caller's identity into the request context. The token's subject is
// the user id; signing is HMAC with a shared secret.
func Auth(store *db.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header is required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Authorization header format must be 'Bearer <token>'")
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				log.Printf("Invalid access token: %v", err)
				unauthorized(w, "Invalid access token")
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				unauthorized(w, "Invalid access token")
				return
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				unauthorized(w, "Invalid access token")
				return
			}

			user, err := store.GetUser(userID)
			if err != nil {
				log.Printf("Error loading user %s: %v", userID, err)
				unauthorized(w, "Unknown user")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized writes a 401 in the uniform failure envelope so auth
// failures look like every other API error.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": http.StatusUnauthorized,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}
