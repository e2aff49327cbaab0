package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dpetersen/larder/internal/model"
	"github.com/dpetersen/larder/internal/store"
)

// ItemHandler serves one inventory group. The label ("Food" or "Pantry")
// only drives the response wording; both groups behave identically.
type ItemHandler struct {
	store  *store.ItemStore
	label  string
	logger *slog.Logger
}

func NewItemHandler(s *store.ItemStore, label string, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{store: s, label: label, logger: logger}
}

type createItemRequest struct {
	Name           string `json:"name"`
	Quantity       int64  `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
	UserID         string `json:"user_id"`
}

type updateItemRequest struct {
	Quantity       *int64  `json:"quantity"`
	ExpirationDate *string `json:"expiration_date"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	items, err := h.store.ListByUser(userID)
	if err != nil {
		h.logger.Error("list items failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	// Both groups answer under the food_items key; clients depend on it.
	writeJSON(w, http.StatusOK, map[string][]model.Item{"food_items": items})
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.ExpirationDate); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "expiration_date must be a date (YYYY-MM-DD)"})
		return
	}

	if err := h.store.Create(req.UserID, req.Name, req.Quantity, req.ExpirationDate); err != nil {
		h.logger.Error("create item failed", "name", req.Name, "user_id", req.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": h.label + " item added successfully!"})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "item_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item_id"})
		return
	}
	userID := r.PathValue("user_id")

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	// The expiration date is accepted as a free-form string here; the mobile
	// client sends whatever it has and the stored value is opaque.
	if req.Quantity == nil || req.ExpirationDate == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity and expiration_date are required"})
		return
	}

	count, err := h.store.Update(id, userID, *req.Quantity, *req.ExpirationDate)
	if err != nil {
		h.logger.Error("update item failed", "item_id", id, "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if count == 0 {
		// A row owned by someone else and a row that does not exist look the
		// same from here; both are a plain not-found.
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Food item not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Food item updated successfully!"})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
		return
	}

	count, err := h.store.Delete(name, userID)
	if err != nil {
		h.logger.Error("delete item failed", "name", name, "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error: " + err.Error()})
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": h.label + " item not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%s item '%s' deleted successfully!", h.label, name)})
}
