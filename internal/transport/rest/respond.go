package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     string          `json:"error"`
	Fields    []fieldErrorDTO `json:"fields,omitempty"`
	Attempted *int64          `json:"attempted,omitempty"`
	Confirmed *int64          `json:"confirmed,omitempty"`
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// respondError translates domain errors into HTTP status codes and a JSON
// error body. Unknown errors are logged and reported as a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]fieldErrorDTO, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		respond(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}

	var perr *domain.PartialPropagationError
	if errors.As(err, &perr) {
		log.ErrorContext(r.Context(), "partial propagation",
			"kind", perr.Kind.String(),
			"entity_id", perr.EntityID.String(),
			"attempted", perr.Attempted,
			"confirmed", perr.Confirmed,
			"error", perr.Err,
		)
		respond(w, http.StatusInternalServerError, errorResponse{
			Error:     "propagation incomplete",
			Attempted: &perr.Attempted,
			Confirmed: &perr.Confirmed,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		respond(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respond(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		respond(w, http.StatusConflict, errorResponse{Error: "already exists"})
	default:
		log.ErrorContext(r.Context(), "request failed", "error", err)
		respond(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
