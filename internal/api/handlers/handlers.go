package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"portfolio-backend/internal/utils"
)

// Multipart forms are parsed with this in-memory threshold; larger parts
// spill to temp files. Policy ceilings are enforced separately per upload.
const maxMultipartMemory = 32 << 20

// pathID parses the {id} path segment. A malformed id behaves like a missing
// record.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Record not found",
		})
		return uuid.Nil, false
	}
	return id, true
}

// formValue reports a multipart field and whether the request supplied it at
// all, so updates can distinguish "omitted" from "set to empty".
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
