package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"keepnote/internal/models"
	"keepnote/internal/session"
)

type userRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// RegisterUser handles POST /user/register. The only endpoint reachable
// without a session.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user := &models.User{ID: req.ID, Name: req.Name, Email: req.Email, Mobile: req.Mobile}
	created, err := h.users.Register(r.Context(), user, req.Password)
	if err != nil {
		h.respondError(w, err, "user")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Login handles POST /user/login and sets the session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s, user, err := h.sessions.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidLogin) {
			respondText(w, http.StatusUnauthorized, "invalid user id or password")
			return
		}
		h.respondError(w, err, "login")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, user)
}

// Logout handles POST /user/logout; it deletes the session and expires
// the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := authUser(w, r); !ok {
		return
	}
	if c, err := r.Cookie(session.CookieName); err == nil && c.Value != "" {
		if err := h.sessions.Logout(r.Context(), c.Value); err != nil {
			h.respondError(w, err, "logout")
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondText(w, http.StatusOK, "logged out")
}

// UpdateUser handles PUT /user/{id}. Only the user themselves may update
// their profile.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := authUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if uid != id {
		respondText(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in := &models.User{Name: req.Name, Email: req.Email, Mobile: req.Mobile}
	user, err := h.users.Update(r.Context(), id, in, req.Password)
	if err != nil {
		h.respondError(w, err, "user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /user/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := authUser(w, r); !ok {
		return
	}
	if err := h.users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondError(w, err, "user")
		return
	}
	respondText(w, http.StatusOK, "user deleted")
}

// GetUser handles GET /user/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := authUser(w, r); !ok {
		return
	}
	user, err := h.users.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err, "user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
