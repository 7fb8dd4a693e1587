package artworks

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/artworks"
	"gallery-app/internal/domain/users"
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

func parseArtworkID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return 0, false
	}
	return uint(id), true
}

func respondStorageError(c *gin.Context, err error, op string) {
	var verr *storage.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork data", "fields": verr.Fields})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
	default:
		log.Error().Err(err).Str("op", op).Str("path", c.FullPath()).Msg("storage error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + op})
	}
}

// canMutate is the ownership rule: admins touch anything, artists only their
// own rows. Unowned rows belong to the house collection and stay admin-only.
func canMutate(a *artworks.Artwork, userID, role string) bool {
	if role == users.RoleAdmin {
		return true
	}
	return a.ArtistID != nil && *a.ArtistID == userID
}

// ------------------------------
// GET /artworks
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	var f storage.ArtworkFilters
	f.Style = c.Query("style")
	f.ArtistID = c.Query("artist")

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a number"})
			return
		}
		f.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a number"})
			return
		}
		f.MaxPrice = &v
	}
	if c.Query("featured") == "true" {
		featured := true
		f.Featured = &featured
	}

	rows, err := h.store.ListArtworks(c.Request.Context(), f)
	if err != nil {
		respondStorageError(c, err, "fetch artworks")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ------------------------------
// GET /artworks/:id
// ------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseArtworkID(c)
	if !ok {
		return
	}

	a, err := h.store.GetArtworkByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, "fetch artwork")
		return
	}
	c.JSON(http.StatusOK, a)
}

// ------------------------------
// POST /artworks
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// New artworks always belong to the authenticated user.
	userID := c.GetString(middleware.CtxUserID)

	a, err := h.store.CreateArtwork(c.Request.Context(), storage.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Style:       req.Style,
		Medium:      req.Medium,
		Width:       req.Width.intPtr(),
		Height:      req.Height.intPtr(),
		Year:        req.Year.intPtr(),
		IsAvailable: req.IsAvailable,
		IsFeatured:  req.IsFeatured,
		ArtistID:    &userID,
	})
	if err != nil {
		respondStorageError(c, err, "create artwork")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ------------------------------
// PATCH /artworks/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseArtworkID(c)
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.store.GetArtworkByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, "update artwork")
		return
	}
	if !canMutate(existing, c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this artwork"})
		return
	}

	a, err := h.store.UpdateArtwork(c.Request.Context(), id, storage.UpdateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Style:       req.Style,
		Medium:      req.Medium,
		Width:       req.Width.intPtr(),
		Height:      req.Height.intPtr(),
		Year:        req.Year.intPtr(),
		IsAvailable: req.IsAvailable,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		respondStorageError(c, err, "update artwork")
		return
	}
	c.JSON(http.StatusOK, a)
}

// ------------------------------
// DELETE /artworks/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseArtworkID(c)
	if !ok {
		return
	}

	existing, err := h.store.GetArtworkByID(c.Request.Context(), id)
	if err != nil {
		respondStorageError(c, err, "delete artwork")
		return
	}
	if !canMutate(existing, c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this artwork"})
		return
	}

	if err := h.store.DeleteArtwork(c.Request.Context(), id); err != nil {
		respondStorageError(c, err, "delete artwork")
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------
// GET /my-artworks
// ------------------------------
func (h *Handler) MyArtworks(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)

	rows, err := h.store.ArtworksByArtist(c.Request.Context(), userID)
	if err != nil {
		respondStorageError(c, err, "fetch artworks")
		return
	}
	c.JSON(http.StatusOK, rows)
}
