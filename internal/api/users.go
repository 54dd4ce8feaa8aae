package api

import (
	"net/http"

	"github.com/gorilla/mux"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type ProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Вход
func (h *LaundryHandler) LoginHandler(w http.ResponseWriter, req *http.Request) {
	var in LoginRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "LoginHandler", err)
		return
	}
	user, err := h.Users.Login(req.Context(), in.Email, in.Password)
	if err != nil {
		h.writeError(w, "LoginHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Регистрация сотрудника
func (h *LaundryHandler) RegisterHandler(w http.ResponseWriter, req *http.Request) {
	var in RegisterRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "RegisterHandler", err)
		return
	}
	user, err := h.Users.Register(req.Context(), in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		h.writeError(w, "RegisterHandler", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *LaundryHandler) ProfileHandler(w http.ResponseWriter, req *http.Request) {
	claims, _ := ClaimsFrom(req.Context())
	user, err := h.Users.Profile(req.Context(), claims.Subject)
	if err != nil {
		h.writeError(w, "ProfileHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *LaundryHandler) UpdateProfileHandler(w http.ResponseWriter, req *http.Request) {
	claims, _ := ClaimsFrom(req.Context())
	var in ProfileRequest
	err := readJSON(req, &in)
	if err != nil {
		h.writeError(w, "UpdateProfileHandler", err)
		return
	}
	user, err := h.Users.UpdateProfile(req.Context(), claims.Subject, models.ProfileUpdate(in))
	if err != nil {
		h.writeError(w, "UpdateProfileHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *LaundryHandler) ListUsersHandler(w http.ResponseWriter, req *http.Request) {
	users, err := h.Users.List(req.Context())
	if err != nil {
		h.writeError(w, "ListUsersHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *LaundryHandler) DeleteUserHandler(w http.ResponseWriter, req *http.Request) {
	err := h.Users.Delete(req.Context(), mux.Vars(req)["id"])
	if err != nil {
		h.writeError(w, "DeleteUserHandler", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "User removed"})
}
