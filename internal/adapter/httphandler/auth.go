package httphandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zarshop/storefront/internal/core/domain"
)

// POST v1/auth/signup JSON {"email", "password", "name"} (200 OK, 400 Bad request)
// POST v1/auth/login JSON {"email", "password"} (200 OK, 400 Bad request)
// POST v1/auth/logout (204 No content, 401 Unauthorized)
// GET v1/auth/me (200 OK, 401 Unauthorized)

type authService interface {
	authenticator
	Signup(ctx context.Context, email, password, name string) (domain.User, domain.Session, error)
	Login(ctx context.Context, email, password string) (domain.User, domain.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, session domain.Session) (domain.User, error)
}

type AuthHandler struct {
	auth authService
}

func RegisterAuth(mux *http.ServeMux, auth authService) {
	h := AuthHandler{auth}
	mux.HandleFunc("POST /v1/auth/signup", h.PostSignup)
	mux.HandleFunc("POST /v1/auth/login", h.PostLogin)
	mux.Handle("POST /v1/auth/logout",
		RequireAuth(auth, http.HandlerFunc(h.PostLogout)))
	mux.Handle("GET /v1/auth/me",
		RequireAuth(auth, http.HandlerFunc(h.GetMe)))
}

func (h AuthHandler) PostSignup(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostSignup"
	log := slog.With("op", op)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	user, session, err := h.auth.Signup(
		r.Context(), req.Email, req.Password, req.Name,
	)
	if err != nil {
		writeErr(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token: session.Token,
		User:  toUser(user),
	})
}

func (h AuthHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogin"
	log := slog.With("op", op)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	user, session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Token: session.Token,
		User:  toUser(user),
	})
}

func (h AuthHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.PostLogout"

	if err := h.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeErr(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.GetMe"

	session, _ := SessionFromContext(r.Context())
	user, err := h.auth.CurrentUser(r.Context(), session)
	if err != nil {
		writeErr(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(user))
}
