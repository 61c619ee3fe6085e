package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend/internal/upload"
	"gorm.io/gorm"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps typed errors to status codes in one place: validation and
// file-policy failures are 400, unknown records 404, anything else 500.
// Validation errors are never retried; persistence errors reach this point
// only after compensation ran.
func WriteError(w http.ResponseWriter, err error, fallback string) {
	var verr *upload.ValidationError

	switch {
	case errors.As(err, &verr):
		JSONResponse(w, http.StatusBadRequest, Payload{Success: false, Message: verr.Error()})
	case errors.Is(err, upload.ErrInvalidFileType):
		JSONResponse(w, http.StatusBadRequest, Payload{Success: false, Message: "Invalid file type for this upload."})
	case errors.Is(err, upload.ErrFileTooLarge):
		JSONResponse(w, http.StatusBadRequest, Payload{Success: false, Message: "File too large for this upload."})
	case errors.Is(err, gorm.ErrRecordNotFound):
		JSONResponse(w, http.StatusNotFound, Payload{Success: false, Message: "Record not found"})
	default:
		JSONResponse(w, http.StatusInternalServerError, Payload{Success: false, Message: fallback})
	}
}
