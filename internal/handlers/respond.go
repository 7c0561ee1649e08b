// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handler groups for the JSON API.
// Every response uses the {success, message, ...} envelope.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// envelope is the uniform JSON response shape. Data holds the payload
// under a resource-specific key ("blog", "routes", ...).
type envelope map[string]any

// respond writes a JSON envelope with the given status code.
func respond(w http.ResponseWriter, code int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondOK writes a success envelope with optional extra payload keys.
func respondOK(w http.ResponseWriter, code int, message string, extra envelope) {
	payload := envelope{"success": true, "message": message}
	for k, v := range extra {
		payload[k] = v
	}
	respond(w, code, payload)
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, code int, message string) {
	respond(w, code, envelope{"success": false, "message": message})
}

// respondInternal logs the error and writes a generic 500 envelope. The
// underlying error never reaches the client.
func respondInternal(w http.ResponseWriter, action string, err error) {
	slog.Error(action, "error", err)
	respondError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// decodeJSON parses the request body into dst. Returns false and writes a
// 400 envelope on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathUUID parses the named chi URL parameter as a UUID. Returns false
// and writes a 400 envelope when the value is not a valid UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
