package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// StatusForError maps an error kind onto an HTTP status.
func StatusForError(err error) int {
	switch entity.KindOf(err) {
	case entity.KindInvalidArgument:
		return http.StatusBadRequest
	case entity.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	case entity.KindCollaboratorFailure:
		return http.StatusBadGateway
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindUnauthenticated:
		return http.StatusUnauthorized
	case entity.KindForbidden:
		return http.StatusForbidden
	case entity.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	status := StatusForError(err)
	msg := http.StatusText(status)
	var e *entity.Error
	if status >= http.StatusInternalServerError {
		// Backend messages stay in the log.
		log.Errorf("Request failed: %v", err)
	} else if errors.As(err, &e) {
		msg = e.Err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg, Kind: entity.KindOf(err).String()})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return entity.InvalidArgument("http.decode", fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}
