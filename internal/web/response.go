package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"linsearch/internal/telemetry"
)

const (
	contentTypeJSON = "application/json"
	allowedMethods  = "GET, POST, OPTIONS"
	allowedHeaders  = "Content-Type"
)

var (
	notFoundBody = []byte(`{"error":"Endpoint not found"}`)
	internalBody = []byte(`{"error":"Internal server error"}`)
)

// writeJSON frames body as a JSON response with an exact Content-Length.
func writeJSON(w http.ResponseWriter, status int, body []byte) {
	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// The client is gone; the connection is dropped without retry.
		telemetry.LogDebug("failed to write response", "error", err)
	}
}

// writeValue marshals v and writes it with status 200.
func writeValue(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		telemetry.LogError("failed to marshal response", err)
		writeJSON(w, http.StatusInternalServerError, internalBody)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func writePreflight(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", allowedMethods)
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
	h.Set("Content-Length", "0")
	w.WriteHeader(http.StatusOK)
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, notFoundBody)
}

func mustMarshal(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return body
}
