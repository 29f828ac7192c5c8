package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

// RespondWithDomainError maps a service error to a status code. Only
// sentinel text reaches the client; anything else gets a generic body.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)
	RespondWithError(w, code, publicMessage(err, code))
}

func publicMessage(err error, code int) string {
	for _, sentinel := range []error{ErrNotFound, ErrUnauthorized, ErrConflict, ErrValidation, ErrBadRequest} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	if code == http.StatusConflict {
		return ErrConflict.Error()
	}
	return ErrInternalServer.Error()
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
