package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type UserHeader struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserHeader(user model.User) UserHeader {
	return UserHeader{
		ID:        string(user.ID()),
		Email:     user.Email(),
		Role:      string(user.Role()),
		CreatedAt: user.CreatedAt(),
	}
}

type ListUsersResponse struct {
	Users []UserHeader `json:"users"`
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.store.QueryUsers(ctx, port.QueryOptions{})
	if err != nil {
		slog.ErrorContext(ctx, "could not query users", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListUsersResponse{
		Users: make([]UserHeader, 0, len(users)),
	}

	for _, u := range users {
		res.Users = append(res.Users, newUserHeader(u))
	}

	encode(w, r, http.StatusOK, res)
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	User UserHeader `json:"user"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	role := model.UserRole(req.Role)
	if !role.IsValid() {
		http.Error(w, "invalid user role", http.StatusBadRequest)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.ErrorContext(ctx, "could not hash password", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.store.CreateUser(ctx, port.UserFields{
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			http.Error(w, "a user with this email already exists", http.StatusConflict)
			return
		}

		slog.ErrorContext(ctx, "could not create user", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encode(w, r, http.StatusCreated, CreateUserResponse{
		User: newUserHeader(user),
	})
}
