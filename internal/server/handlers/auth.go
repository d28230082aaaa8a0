package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nilesh2630/floorplan/internal/models"
	"github.com/nilesh2630/floorplan/internal/server/storage"
	"github.com/nilesh2630/floorplan/internal/validation"
	"github.com/nilesh2630/floorplan/pkg/api"
)

// UserStorage is the slice of the store the auth handlers need.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	logger  *slog.Logger
	storage UserStorage
	jwtCfg  JWTConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger *slog.Logger, storage UserStorage, jwtCfg JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		storage: storage,
		jwtCfg:  jwtCfg,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := h.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			writeError(w, h.logger, http.StatusConflict, "User already exists")
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("User registered", "user_id", user.ID)
	writeJSON(w, h.logger, http.StatusCreated, api.RegisterResponse{
		UserID: user.ID,
		Email:  user.Email,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Same answer as a wrong password: no account enumeration.
			writeError(w, h.logger, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("Failed to load user", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.Warn("Failed login attempt", "user_id", user.ID)
		writeError(w, h.logger, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtCfg, user.ID, user.Email)
	if err != nil {
		h.logger.Error("Failed to generate token", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("User logged in", "user_id", user.ID)
	writeJSON(w, h.logger, http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}
