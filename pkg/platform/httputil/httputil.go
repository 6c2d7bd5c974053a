// Package httputil holds the JSON response helpers shared by handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "augur/pkg/domain-errors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the JSON error envelope. Internal errors
// never leak their description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := ""
	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		message = de.Message
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && message != "" {
		body["error_description"] = message
	}
	WriteJSON(w, dErrors.HTTPStatus(code), body)
}
