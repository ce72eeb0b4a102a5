package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/auth"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/httpx"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/models"
	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// Bootstrap credentials seeded on the very first login attempt against
// an empty user table.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin123"
)

type AuthHandler struct {
	users  store.UserStore
	secret string
}

func NewAuthHandler(users store.UserStore, secret string) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login verifies credentials and issues a token. When the user table
// is completely empty, the first attempt seeds the default admin
// account so a fresh install is reachable.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	if c.Username == "" || c.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Kullanıcı adı ve şifre gereklidir", nil)
		return
	}

	user, err := h.users.GetByUsername(r.Context(), c.Username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		user, err = h.bootstrapAdmin(r, c.Username)
		if err != nil {
			if errors.Is(err, errNotBootstrap) {
				httpx.JSONError(w, http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı", nil)
				return
			}
			log.Printf("login bootstrap: %v", err)
			httpx.JSONError(w, http.StatusInternalServerError, "Giriş yapılırken bir hata oluştu", nil)
			return
		}
	case err != nil:
		log.Printf("login lookup: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Giriş yapılırken bir hata oluştu", nil)
		return
	}

	if !auth.CheckPassword(user.Password, c.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı", nil)
		return
	}

	token, err := auth.IssueToken(h.secret, user)
	if err != nil {
		log.Printf("token sign: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Giriş yapılırken bir hata oluştu", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Register creates a new account and issues a token for it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Geçersiz istek gövdesi", nil)
		return
	}
	if c.Username == "" || c.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Kullanıcı adı ve şifre gereklidir", nil)
		return
	}

	if _, err := h.users.GetByUsername(r.Context(), c.Username); err == nil {
		httpx.JSONError(w, http.StatusBadRequest, "Bu kullanıcı adı zaten kullanılıyor", nil)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("register lookup: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Kayıt olurken bir hata oluştu", nil)
		return
	}

	hash, err := auth.HashPassword(c.Password)
	if err != nil {
		log.Printf("register hash: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Kayıt olurken bir hata oluştu", nil)
		return
	}
	user, err := h.users.Create(r.Context(), models.NewUser(c.Username, hash, c.Role, c.Name))
	if err != nil {
		// a racing registration may win between the lookup and here
		if errors.Is(err, store.ErrDuplicate) {
			httpx.JSONError(w, http.StatusBadRequest, "Bu kullanıcı adı zaten kullanılıyor", nil)
			return
		}
		log.Printf("register create: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Kayıt olurken bir hata oluştu", nil)
		return
	}

	token, err := auth.IssueToken(h.secret, user)
	if err != nil {
		log.Printf("token sign: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Kayıt olurken bir hata oluştu", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

var errNotBootstrap = errors.New("not a bootstrap login")

// bootstrapAdmin seeds the default admin, but only when no user exists
// at all. Any other unknown username is an ordinary failed login.
func (h *AuthHandler) bootstrapAdmin(r *http.Request, username string) (*models.User, error) {
	if username != bootstrapUsername {
		return nil, errNotBootstrap
	}
	n, err := h.users.Count(r.Context())
	if err != nil {
		return nil, err
	}
	if n != 0 {
		return nil, errNotBootstrap
	}
	hash, err := auth.HashPassword(bootstrapPassword)
	if err != nil {
		return nil, err
	}
	u, err := h.users.Create(r.Context(), models.NewUser(bootstrapUsername, hash, models.RoleAdmin, "Admin Kullanıcı"))
	if errors.Is(err, store.ErrDuplicate) {
		// a concurrent first login already seeded the account
		return h.users.GetByUsername(r.Context(), bootstrapUsername)
	}
	return u, err
}
