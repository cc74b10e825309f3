package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/YutoSekiguchi/Lyricium/logger"
	"github.com/YutoSekiguchi/Lyricium/model"

	"github.com/gorilla/mux"
)

const defaultRecentLimit = 10

// GetAllSongsHandler returns all songs. An empty table yields an empty list.
func (h *APIHandler) GetAllSongsHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.GetAllSongs()
	if err != nil {
		logger.Error("Failed to get songs", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	respondJSON(w, http.StatusOK, songs)
}

// GetSongByIDHandler returns the song with the given id, or 404.
func (h *APIHandler) GetSongByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	song, err := h.songRepo.GetSongByID(id)
	if err != nil {
		logger.Error("Failed to get song by id", logger.Int64("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get song")
		return
	}
	if song == nil {
		respondError(w, http.StatusNotFound, "Song not found")
		return
	}
	respondJSON(w, http.StatusOK, song)
}

// GetSongsByUserIDHandler returns a user's songs in random order, or 404 when
// the user has none.
func (h *APIHandler) GetSongsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "user_id must be an integer")
		return
	}

	songs, err := h.songRepo.GetSongsByUserID(userID)
	if err != nil {
		logger.Error("Failed to get songs by user", logger.Int64("userId", userID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	h.respondSongList(w, songs)
}

// GetSongsByColorHandler returns songs matching a color in random order, or 404.
func (h *APIHandler) GetSongsByColorHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.GetSongsByColor(mux.Vars(r)["color"])
	if err != nil {
		logger.Error("Failed to get songs by color", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	h.respondSongList(w, songs)
}

// GetSongsByChemicalNameHandler returns songs matching a chemical name in
// random order, or 404.
func (h *APIHandler) GetSongsByChemicalNameHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.GetSongsByChemicalName(mux.Vars(r)["chemical_name"])
	if err != nil {
		logger.Error("Failed to get songs by chemical name", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	h.respondSongList(w, songs)
}

// GetSongsByStyleHandler returns songs matching a style in random order, or 404.
func (h *APIHandler) GetSongsByStyleHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.GetSongsByStyle(mux.Vars(r)["style"])
	if err != nil {
		logger.Error("Failed to get songs by style", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	h.respondSongList(w, songs)
}

// respondSongList writes a filtered song list, mapping an empty result to
// 404. Only the filtered song queries behave this way; the list-all
// endpoints return empty lists.
func (h *APIHandler) respondSongList(w http.ResponseWriter, songs []*model.Song) {
	if len(songs) == 0 {
		respondError(w, http.StatusNotFound, "Songs not found")
		return
	}
	respondJSON(w, http.StatusOK, songs)
}

// GetRandomSongIDHandler returns the bare id of one uniformly random song,
// or 404 when the table is empty.
func (h *APIHandler) GetRandomSongIDHandler(w http.ResponseWriter, r *http.Request) {
	song, err := h.songRepo.GetRandomSong()
	if err != nil {
		logger.Error("Failed to get random song", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get song")
		return
	}
	if song == nil {
		respondError(w, http.StatusNotFound, "Song not found")
		return
	}
	respondJSON(w, http.StatusOK, song.ID)
}

// GetRecentSongsHandler returns up to ?limit= songs ordered by creation time
// descending, or 404 when none exist.
func (h *APIHandler) GetRecentSongsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusUnprocessableEntity, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	songs, err := h.songRepo.GetRecentSongs(limit)
	if err != nil {
		logger.Error("Failed to get recent songs", logger.Int("limit", limit), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get songs")
		return
	}
	h.respondSongList(w, songs)
}

// createSongPayload mirrors the creation schema. Every field is required;
// pointer fields distinguish a missing field from an empty value.
type createSongPayload struct {
	Title        *string `json:"title"`
	UserID       *int64  `json:"user_id"`
	Type         *string `json:"type"`
	Color        *string `json:"color"`
	Symbol       *string `json:"symbol"`
	ChemicalName *string `json:"chemical_name"`
	Style        *string `json:"style"`
	Lyrics       *string `json:"lyrics"`
	Image        *string `json:"image"`
	URL          *string `json:"url"`
}

func (p *createSongPayload) validate() string {
	switch {
	case p.Title == nil:
		return "title is required"
	case p.UserID == nil:
		return "user_id is required"
	case p.Type == nil:
		return "type is required"
	case p.Color == nil:
		return "color is required"
	case p.Symbol == nil:
		return "symbol is required"
	case p.ChemicalName == nil:
		return "chemical_name is required"
	case p.Style == nil:
		return "style is required"
	case p.Lyrics == nil:
		return "lyrics is required"
	case p.Image == nil:
		return "image is required"
	case p.URL == nil:
		return "url is required"
	}
	return ""
}

// CreateSongHandler validates the request shape and that the referenced user
// exists, then creates the song.
func (h *APIHandler) CreateSongHandler(w http.ResponseWriter, r *http.Request) {
	var payload createSongPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if msg := payload.validate(); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	req := model.CreateSongRequest{
		Title:        *payload.Title,
		UserID:       *payload.UserID,
		Type:         *payload.Type,
		Color:        *payload.Color,
		Symbol:       *payload.Symbol,
		ChemicalName: *payload.ChemicalName,
		Style:        *payload.Style,
		Lyrics:       *payload.Lyrics,
		Image:        *payload.Image,
		URL:          *payload.URL,
	}

	user, err := h.userRepo.GetUserByID(req.UserID)
	if err != nil {
		logger.Error("Failed to check song owner", logger.Int64("userId", req.UserID), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to create song")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	song, err := h.songRepo.CreateSong(&req)
	if err != nil {
		logger.Error("Failed to create song", logger.String("title", req.Title), logger.ErrorField(err))
		respondError(w, http.StatusBadRequest, "Song already exists")
		return
	}
	respondJSON(w, http.StatusOK, song)
}
