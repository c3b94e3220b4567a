package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// writeResult writes res with okStatus on success and the mapped error
// status otherwise.
func writeResult[T any](w http.ResponseWriter, r *http.Request, res models.Result[T], okStatus int) {
	status := okStatus
	if !res.Success {
		status = statusFromError(res.Err())
		event := logger.FromRequest(r).Err(res.Err()).Int("status", status)
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			event = event.Str("user_id", userID)
		}
		event.Msg("request failed")
	}

	if _, err := utils.WriteJSON(w, res, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError writes a failed result for err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeResult(w, r, models.Fail[any](err), http.StatusOK)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
