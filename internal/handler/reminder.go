package handler

import (
	"encoding/json"
	"net/http"

	"keepnote/internal/models"
)

// CreateReminder handles POST /reminder.
func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	var rem models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&rem); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.reminders.Create(r.Context(), uid, &rem); err != nil {
		h.respondError(w, err, "reminder")
		return
	}
	respondJSON(w, http.StatusCreated, rem)
}

// UpdateReminder handles PUT /reminder/{id}.
func (h *Handler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "reminder not found")
		return
	}
	var in models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rem, err := h.reminders.Update(r.Context(), uid, id, &in)
	if err != nil {
		h.respondError(w, err, "reminder")
		return
	}
	respondJSON(w, http.StatusOK, rem)
}

// DeleteReminder handles DELETE /reminder/{id}.
func (h *Handler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "reminder not found")
		return
	}
	if err := h.reminders.Delete(r.Context(), uid, id); err != nil {
		h.respondError(w, err, "reminder")
		return
	}
	respondText(w, http.StatusOK, "reminder deleted")
}

// GetReminder handles GET /reminder/{id}.
func (h *Handler) GetReminder(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondText(w, http.StatusNotFound, "reminder not found")
		return
	}
	rem, err := h.reminders.GetByID(r.Context(), uid, id)
	if err != nil {
		h.respondError(w, err, "reminder")
		return
	}
	respondJSON(w, http.StatusOK, rem)
}

// GetAllReminders handles GET /reminder, scoped to the session owner.
func (h *Handler) GetAllReminders(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	reminders, err := h.reminders.GetAllByOwner(r.Context(), uid)
	if err != nil {
		h.respondError(w, err, "reminder")
		return
	}
	respondJSON(w, http.StatusOK, reminders)
}
