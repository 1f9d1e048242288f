package response

import (
	"encoding/json"
	"net/http"
)

// Detail is the wire shape for singular errors. The status code is echoed
// in the payload so clients never need to inspect transport headers.
type Detail struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes a singular error body.
func Error(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, Detail{Detail: detail, StatusCode: statusCode})
}

// FieldErrors writes a field-scoped validation error body of the shape
// {field: [messages]}.
func FieldErrors(w http.ResponseWriter, errors map[string][]string) {
	JSON(w, http.StatusBadRequest, errors)
}

func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

func Unauthorized(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Authentication credentials were not provided."
	}
	Error(w, http.StatusUnauthorized, detail)
}

func Forbidden(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "You do not have permission to perform this action."
	}
	Error(w, http.StatusForbidden, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	if detail == "" {
		detail = "Not found."
	}
	Error(w, http.StatusNotFound, detail)
}

// IntegrityError is the catch-all for unexpected store failures. It never
// leaks internal details to the caller.
func IntegrityError(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "A database integrity error occurred. This might be due to duplicate entry or related data issues.")
}
