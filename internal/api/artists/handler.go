package artists

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

// ------------------------------
// GET /artists
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	rows, err := h.store.ListArtists(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("op", "list artists").Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ------------------------------
// GET /artists/:id
// ------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.store.GetArtistWithArtworks(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		log.Error().Err(err).Str("op", "fetch artist").Str("artist_id", id).Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
