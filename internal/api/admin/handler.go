package admin

import (
	"errors"
	"net/http"

	"gallery-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	store storage.Store
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// GET /admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("op", "admin stats").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("op", "admin list users").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /admin/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Str("op", "admin get user").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PATCH /admin/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UpdateUser(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Str("op", "admin update user").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}
