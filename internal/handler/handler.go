package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"keepnote/internal/middleware"
	"keepnote/internal/repository"
	"keepnote/internal/service"
	"keepnote/internal/session"
)

// Handler exposes the REST endpoints for users, categories, notes and
// reminders.
type Handler struct {
	users      *service.UserService
	categories *service.CategoryService
	notes      *service.NoteService
	reminders  *service.ReminderService
	sessions   *session.Manager
	log        *logrus.Logger
}

func NewHandler(
	users *service.UserService,
	categories *service.CategoryService,
	notes *service.NoteService,
	reminders *service.ReminderService,
	sessions *session.Manager,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		users:      users,
		categories: categories,
		notes:      notes,
		reminders:  reminders,
		sessions:   sessions,
		log:        log,
	}
}

// Routes builds the router with session resolution and access logging
// applied to every endpoint.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.AccessLog(h.log), middleware.Session(h.sessions))

	r.HandleFunc("/user/register", h.RegisterUser).Methods("POST")
	r.HandleFunc("/user/login", h.Login).Methods("POST")
	r.HandleFunc("/user/logout", h.Logout).Methods("POST")
	r.HandleFunc("/user/{id}", h.UpdateUser).Methods("PUT")
	r.HandleFunc("/user/{id}", h.DeleteUser).Methods("DELETE")
	r.HandleFunc("/user/{id}", h.GetUser).Methods("GET")

	r.HandleFunc("/category", h.CreateCategory).Methods("POST")
	r.HandleFunc("/category", h.GetAllCategories).Methods("GET")
	r.HandleFunc("/category/{id}", h.UpdateCategory).Methods("PUT")
	r.HandleFunc("/category/{id}", h.DeleteCategory).Methods("DELETE")

	r.HandleFunc("/note", h.CreateNote).Methods("POST")
	r.HandleFunc("/note", h.GetAllNotes).Methods("GET")
	r.HandleFunc("/note/{id}", h.UpdateNote).Methods("PUT")
	r.HandleFunc("/note/{id}", h.DeleteNote).Methods("DELETE")

	r.HandleFunc("/reminder", h.CreateReminder).Methods("POST")
	r.HandleFunc("/reminder", h.GetAllReminders).Methods("GET")
	r.HandleFunc("/reminder/{id}", h.GetReminder).Methods("GET")
	r.HandleFunc("/reminder/{id}", h.UpdateReminder).Methods("PUT")
	r.HandleFunc("/reminder/{id}", h.DeleteReminder).Methods("DELETE")

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, msg)
}

// respondError maps domain errors to the status policy: 404 for expected
// absence, 409 for duplicate ids, 500 for anything unexpected.
func (h *Handler) respondError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondText(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, repository.ErrAlreadyExists):
		respondText(w, http.StatusConflict, entity+" already exists")
	default:
		h.log.Errorf("%s request failed: %v", entity, err)
		respondText(w, http.StatusInternalServerError, "internal server error")
	}
}

// authUser returns the session identity, writing a 401 when absent.
func authUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := session.UserID(r.Context())
	if !ok {
		respondText(w, http.StatusUnauthorized, "unauthorized")
	}
	return uid, ok
}

// pathID parses the numeric {id} path variable.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
