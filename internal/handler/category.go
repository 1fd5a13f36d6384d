package handler

import (
	"encoding/json"
	"net/http"

	"keepnote/internal/models"
)

// CreateCategory handles POST /category.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.categories.Create(r.Context(), uid, &c); err != nil {
		h.respondError(w, err, "category")
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// UpdateCategory handles PUT /category/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "category not found")
		return
	}
	var in models.Category
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.categories.Update(r.Context(), uid, id, &in)
	if err != nil {
		h.respondError(w, err, "category")
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// DeleteCategory handles DELETE /category/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "category not found")
		return
	}
	if err := h.categories.Delete(r.Context(), uid, id); err != nil {
		h.respondError(w, err, "category")
		return
	}
	respondText(w, http.StatusOK, "category deleted")
}

// GetAllCategories handles GET /category, scoped to the session owner.
func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	categories, err := h.categories.GetAllByOwner(r.Context(), uid)
	if err != nil {
		h.respondError(w, err, "category")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
