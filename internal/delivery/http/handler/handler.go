package handler

import (
	"net/http"
	"strconv"

	"medshift-scheduler/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// actorFromContext returns the authenticated user ID for audit trails,
// or nil when the request is unauthenticated.
func actorFromContext(r *http.Request) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil
	}
	return &userID
}

func parseUintVar(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
