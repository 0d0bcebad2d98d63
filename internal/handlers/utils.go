package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookworm-app/apiserver/types"
)

type contextKey string

const contextUserKey contextKey = "user"

// userFromContext returns the authenticated caller injected by RequireAuth.
func userFromContext(ctx context.Context) (types.PublicUser, error) {
	user, ok := ctx.Value(contextUserKey).(types.PublicUser)
	if !ok || user.ID < 1 {
		return types.PublicUser{}, errors.New("missing authenticated user")
	}
	return user, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// ErrorResponse is the failure payload. Every error carries a
// human-readable message and nothing else.
type ErrorResponse struct {
	Message string `json:"message"`
}
