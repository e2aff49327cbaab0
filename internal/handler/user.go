package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dpetersen/larder/internal/model"
	"github.com/dpetersen/larder/internal/store"
)

type UserHandler struct {
	store  *store.UserStore
	logger *slog.Logger
}

func NewUserHandler(s *store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: s, logger: logger}
}

type createUserRequest struct {
	Username       string  `json:"username"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	PasswordHash   string  `json:"password_hash"`
	ProfilePicture *string `json:"profile_picture"`
	FamilyID       *string `json:"family_id"`
	CreatedAt      string  `json:"created_at"`
}

// userResponse is the lookup contract: the stored primary key is aliased to
// id, and phone is not disclosed.
type userResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          *string `json:"email"`
	PasswordHash   string  `json:"password_hash"`
	ProfilePicture *string `json:"profile_picture"`
	FamilyID       *string `json:"family_id"`
	CreatedAt      string  `json:"created_at"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		ProfilePicture: u.ProfilePicture,
		FamilyID:       u.FamilyID,
		CreatedAt:      u.CreatedAt,
	}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Username == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username is required"})
		return
	}
	if req.PasswordHash == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password_hash is required"})
		return
	}
	if req.CreatedAt == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "created_at is required"})
		return
	}

	id, err := h.store.Create(model.User{
		Username:       req.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHash:   req.PasswordHash,
		ProfilePicture: req.ProfilePicture,
		FamilyID:       req.FamilyID,
		CreatedAt:      req.CreatedAt,
	})
	if errors.Is(err, store.ErrPhoneInUse) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Phone number already in use."})
		return
	}
	if err != nil {
		h.logger.Error("create user failed", "username", req.Username, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "User added successfully!", "user_id": id})
}

func (h *UserHandler) VerifyExists(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Identifier == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "identifier is required"})
		return
	}

	exists, err := h.store.Exists(req.Identifier)
	if err != nil {
		h.logger.Error("verify user failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

// Get looks a user up by identifier. An all-digit identifier is a numeric
// user id and never falls through to the username/email match, even when a
// username happens to be all digits. Anything else is percent-decoded first
// so identifiers carrying characters like '#' survive the path segment.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	var u *model.User
	var err error
	if isDigits(identifier) {
		id, perr := strconv.ParseInt(identifier, 10, 64)
		if perr != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid identifier"})
			return
		}
		u, err = h.store.GetByID(id)
	} else {
		u, err = h.store.GetByNameOrEmail(percentDecode(identifier))
	}
	if err != nil {
		h.logger.Error("get user failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *UserHandler) GetID(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	if identifier == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "identifier is required"})
		return
	}

	u, err := h.store.GetByNameOrEmail(percentDecode(identifier))
	if err != nil {
		h.logger.Error("get user id failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"user_id": u.ID})
}

// percentDecode reverses percent-encoding, falling back to the input when it
// is not valid encoded text.
func percentDecode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
