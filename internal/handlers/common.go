package handlers

import (
	"log"
	"net/http"
	"strconv"

	"health-monitoring-backend/internal/utils"
)

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// internalError logs the underlying failure and returns an opaque body to
// the caller; raw store errors never leave the process.
func internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("Error: %s: %v", op, err)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", "")
}
