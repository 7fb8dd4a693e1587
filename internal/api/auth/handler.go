package auth

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"gallery-app/config"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/session"
	"gallery-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	store    storage.Store
	sessions session.Store
}

func NewHandler(store storage.Store, sessions session.Store) *Handler {
	return &Handler{store: store, sessions: sessions}
}

func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmailValid(email string) bool {
	return emailRe.MatchString(email)
}

func sessionTTL() time.Duration {
	if config.SESSION_TTL_HOURS > 0 {
		return time.Duration(config.SESSION_TTL_HOURS) * time.Hour
	}
	return session.DefaultTTL
}

// issueSession persists the session first and only then hands the signed
// cookie to the client; a failed store write leaves no half-login behind.
func (h *Handler) issueSession(c *gin.Context, userID string) error {
	sess, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	token, err := session.SignID(sess.ID, config.SESSION_SECRET, sessionTTL())
	if err != nil {
		_ = h.sessions.Delete(c.Request.Context(), sess.ID)
		return err
	}

	c.SetCookie(
		session.CookieName,
		token,
		int(sessionTTL().Seconds()),
		"/",
		"",
		config.IsProduction(), // secure only over HTTPS
		true,                  // httpOnly
	)
	return nil
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", config.IsProduction(), true)
}

// ------------------------------
// POST /auth/register
// ------------------------------
func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		IsArtist  bool   `json:"isArtist"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isPasswordStrong(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters long and contain both letters and numbers"})
		return
	}
	if !isEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if _, err := h.store.GetUserByEmail(c.Request.Context(), input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Error().Err(err).Str("op", "register").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	hashed := string(hashedPassword)

	user, err := h.store.UpsertUser(c.Request.Context(), users.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsArtist:     input.IsArtist,
		Role:         users.RoleUser,
		AuthProvider: "local",
		PasswordHash: &hashed,
	})
	if err != nil {
		log.Error().Err(err).Str("op", "register").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ------------------------------
// POST /auth/login
// ------------------------------
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.PasswordHash == nil || *user.PasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses Google sign-in"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := h.issueSession(c, user.ID); err != nil {
		log.Error().Err(err).Str("op", "login").Msg("session error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ------------------------------
// POST /auth/logout
// ------------------------------
func (h *Handler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionID)
	if sid != "" {
		if err := h.sessions.Delete(c.Request.Context(), sid); err != nil {
			log.Error().Err(err).Str("op", "logout").Msg("session error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
	}
	h.clearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ------------------------------
// GET /auth/user
// ------------------------------
func (h *Handler) CurrentUser(c *gin.Context) {
	value, exists := c.Get(middleware.CtxUser)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, value)
}

// ------------------------------
// PATCH /auth/user
// ------------------------------
func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email != nil && !isEmailValid(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	user, err := h.store.UpdateUser(c.Request.Context(), userID, req.toInput())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error().Err(err).Str("op", "update user").Str("user_id", userID).Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
