package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/andrewpaige1/studyapp-api/models"
	"github.com/andrewpaige1/studyapp-api/store"
)

type idResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// requireStore rejects the request when no database is configured.
func (db *DBHandler) requireStore(w http.ResponseWriter, r *http.Request) bool {
	if err := db.Store.Err(); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("database unavailable")
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return false
	}
	return true
}

// storeFailed reports an unexpected store error.
func storeFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("store operation failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeRecord reads a JSON body into dst and validates it. On failure the
// response has already been written.
func decodeRecord(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := models.Validate(dst); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Detail: "Validation failed",
				Errors: verr.Fields,
			})
			return false
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("validation failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	return true
}
