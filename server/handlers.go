package server

import (
	"encoding/json"
	"net/http"

	"github.com/YutoSekiguchi/Lyricium/config"
	"github.com/YutoSekiguchi/Lyricium/logger"
	"github.com/YutoSekiguchi/Lyricium/repository"
)

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo repository.UserRepository
	songRepo repository.SongRepository
	cfg      *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(userRepo repository.UserRepository, songRepo repository.SongRepository, cfg *config.Config) *APIHandler {
	return &APIHandler{
		userRepo: userRepo,
		songRepo: songRepo,
		cfg:      cfg,
	}
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", logger.ErrorField(err))
	}
}

// respondError writes an error response in the {"detail": ...} shape.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// RootHandler responds to GET /.
func (h *APIHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"Hello": "Lyricium"})
}
