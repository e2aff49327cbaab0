package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dpetersen/larder/internal/model"
	"github.com/dpetersen/larder/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SharedListHandler struct {
	store  *store.SharedListStore
	logger *slog.Logger
}

func NewSharedListHandler(s *store.SharedListStore, logger *slog.Logger) *SharedListHandler {
	return &SharedListHandler{store: s, logger: logger}
}

type createSharedItemRequest struct {
	Name          string  `json:"name"`
	FamilyID      *string `json:"family_id"`
	AddedByUserID *int64  `json:"added_by_user_id"`
	Timestamp     string  `json:"timestamp"`
	Notes         *string `json:"notes"`
}

// List returns family items when family_id is given (decoded, taking
// precedence over user_id), otherwise the user's personal items: rows with no
// family_id at all, never the rows of the user's family.
func (h *SharedListHandler) List(w http.ResponseWriter, r *http.Request) {
	familyID := r.URL.Query().Get("family_id")
	userIDStr := r.URL.Query().Get("user_id")

	var items []model.SharedListItem
	var err error
	switch {
	case familyID != "":
		items, err = h.store.ListByFamily(percentDecode(familyID))
	case userIDStr != "":
		userID, perr := strconv.ParseInt(userIDStr, 10, 64)
		if perr != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
			return
		}
		items, err = h.store.ListPersonal(userID)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing user_id or family_id"})
		return
	}
	if err != nil {
		h.logger.Error("list shared items failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}

	if items == nil {
		items = []model.SharedListItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *SharedListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSharedItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.AddedByUserID == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "added_by_user_id is required"})
		return
	}
	if req.Timestamp == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "timestamp is required"})
		return
	}

	if err := h.store.Create(req.Name, req.FamilyID, *req.AddedByUserID, req.Timestamp, req.Notes); err != nil {
		if isLocked(err) {
			h.logger.Warn("shared list insert hit a locked database", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database is currently locked. Please try again."})
			return
		}
		h.logger.Error("create shared item failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Shared list item added successfully"})
}

func (h *SharedListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item_id"})
		return
	}

	count, err := h.store.Delete(id)
	if err != nil {
		h.logger.Error("delete shared item failed", "item_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// isLocked reports whether the error is SQLite lock contention that outlived
// the busy timeout. The caller is told to try again; nothing retries here.
func isLocked(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	code := serr.Code() & 0xff
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}
