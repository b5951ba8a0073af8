package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"scenemover/internal/domain"
	"scenemover/internal/service"
)

// maxSceneBytes bounds request bodies; a full X32 scene is well under 1MB.
const maxSceneBytes = 8 << 20

// SceneHandler handles scene API requests
type SceneHandler struct {
	svc *service.RemapService
}

// NewSceneHandler creates a new scene handler
func NewSceneHandler(svc *service.RemapService) *SceneHandler {
	return &SceneHandler{svc: svc}
}

// Error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// InspectRequest is the body of POST /api/scene/inspect.
type InspectRequest struct {
	Scene   string `json:"scene"`
	Profile string `json:"profile,omitempty"`
}

// RemapRequest is the body of POST /api/scene/remap. Mappings use the
// same wire shape the crossbar export uses: an array of [old, new]
// position pairs.
type RemapRequest struct {
	Scene    string               `json:"scene"`
	Profile  string               `json:"profile,omitempty"`
	Mappings [][2]domain.Position `json:"mappings"`
}

// InspectScene parses a scene and returns its channels, names and links
func (h *SceneHandler) InspectScene(w http.ResponseWriter, r *http.Request) {
	var req InspectRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Inspect(req.Profile, req.Scene)
	if err != nil {
		h.writeServiceError(w, "Failed to inspect scene", err)
		return
	}

	h.writeJSON(w, result, http.StatusOK)
}

// RemapScene rewrites a scene under the requested channel mappings
func (h *SceneHandler) RemapScene(w http.ResponseWriter, r *http.Request) {
	var req RemapRequest
	if !h.readJSON(w, r, &req) {
		return
	}

	mappings := make([]domain.Mapping, 0, len(req.Mappings))
	for _, pair := range req.Mappings {
		mappings = append(mappings, domain.Mapping{Old: pair[0], New: pair[1]})
	}

	result, err := h.svc.Remap(req.Profile, req.Scene, mappings)
	if err != nil {
		h.writeServiceError(w, "Failed to remap scene", err)
		return
	}

	h.writeJSON(w, result, http.StatusOK)
}

// ListProfiles returns the configured device profiles
func (h *SceneHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Profiles(), http.StatusOK)
}

// Health reports liveness
func (h *SceneHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *SceneHandler) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxSceneBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps engine errors onto HTTP statuses: bad requests
// and conflicts are the caller's to fix, anything else is ours.
func (h *SceneHandler) writeServiceError(w http.ResponseWriter, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	switch {
	case errors.Is(err, domain.ErrConflict):
		h.writeError(w, msg, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUnknownProfile), errors.Is(err, domain.ErrOutOfRange):
		h.writeError(w, msg, err.Error(), http.StatusBadRequest)
	default:
		h.writeError(w, msg, err.Error(), http.StatusInternalServerError)
	}
}

func (h *SceneHandler) writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func (h *SceneHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
