package handler

import (
	"encoding/json"
	"net/http"

	"keepnote/internal/models"
)

// CreateNote handles POST /note.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	var n models.Note
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.notes.Create(r.Context(), uid, &n); err != nil {
		h.respondError(w, err, "note")
		return
	}
	respondJSON(w, http.StatusCreated, n)
}

// UpdateNote handles PUT /note/{id}.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "note not found")
		return
	}
	var in models.Note
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := h.notes.Update(r.Context(), uid, id, &in)
	if err != nil {
		h.respondError(w, err, "note")
		return
	}
	respondJSON(w, http.StatusOK, n)
}

// DeleteNote handles DELETE /note/{id}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "note not found")
		return
	}
	if err := h.notes.Delete(r.Context(), uid, id); err != nil {
		h.respondError(w, err, "note")
		return
	}
	respondText(w, http.StatusOK, "note deleted")
}

// GetAllNotes handles GET /note, scoped to the session owner.
func (h *Handler) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	notes, err := h.notes.GetAllByOwner(r.Context(), uid)
	if err != nil {
		h.respondError(w, err, "note")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}
