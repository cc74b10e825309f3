package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/YutoSekiguchi/Lyricium/logger"
	"github.com/YutoSekiguchi/Lyricium/model"

	"github.com/gorilla/mux"
)

// GetAllUsersHandler returns all users. An empty table yields an empty list,
// not a 404.
func (h *APIHandler) GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers()
	if err != nil {
		logger.Error("Failed to get users", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUserByEmailHandler returns the user with the given email, or 404.
func (h *APIHandler) GetUserByEmailHandler(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Error("Failed to get user by email", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetUserByIDHandler returns the user with the given id, or 404.
func (h *APIHandler) GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	user, err := h.userRepo.GetUserByID(id)
	if err != nil {
		logger.Error("Failed to get user by id", logger.Int64("id", id), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// createUserPayload mirrors the creation schema. Every field is required;
// pointer fields distinguish a missing field from an empty string.
type createUserPayload struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Image       *string `json:"image"`
}

func (p *createUserPayload) validate() string {
	switch {
	case p.Name == nil:
		return "name is required"
	case p.DisplayName == nil:
		return "display_name is required"
	case p.Email == nil:
		return "email is required"
	case p.Image == nil:
		return "image is required"
	}
	return ""
}

// CreateUserHandler creates a user, or returns the existing record unchanged
// when one with the same email already exists.
func (h *APIHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload createUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if msg := payload.validate(); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	req := model.CreateUserRequest{
		Name:        *payload.Name,
		DisplayName: *payload.DisplayName,
		Email:       *payload.Email,
		Image:       *payload.Image,
	}
	user, err := h.userRepo.CreateUser(&req)
	if err != nil {
		logger.Error("Failed to create user", logger.String("email", req.Email), logger.ErrorField(err))
		respondError(w, http.StatusBadRequest, "User already exists")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
