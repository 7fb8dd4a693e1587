package routes

import (
	adminapi "gallery-app/internal/api/admin"
	artistsapi "gallery-app/internal/api/artists"
	artworksapi "gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/session"
	"gallery-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store storage.Store, sessions session.Store) {
	artworksH := artworksapi.NewHandler(store)
	artistsH := artistsapi.NewHandler(store)
	authH := authapi.NewHandler(store, sessions)
	adminH := adminapi.NewHandler(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog
	r.GET("/artworks", artworksH.List)
	r.GET("/artworks/:id", artworksH.GetByID)
	r.GET("/artists", artistsH.List)
	r.GET("/artists/:id", artistsH.GetByID)

	// Public auth entry points, with input sanitization
	public := r.Group("/auth")
	public.Use(middleware.SanitizeJSONInput())
	public.POST("/register", authH.Register)
	public.POST("/login", authH.Login)
	public.GET("/google", authH.GoogleStart)
	public.GET("/google/callback", authH.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(sessions, store))

	auth.POST("/auth/logout", authH.Logout)
	auth.GET("/auth/user", authH.CurrentUser)
	auth.PATCH("/auth/user", authH.UpdateCurrentUser)

	auth.POST("/artworks", artworksH.Create)
	auth.PATCH("/artworks/:id", artworksH.Update)
	auth.DELETE("/artworks/:id", artworksH.Delete)
	auth.GET("/my-artworks", artworksH.MyArtworks)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(sessions, store), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminH.Dashboard)
	admin.GET("/users", adminH.ListUsers)
	admin.GET("/users/:id", adminH.GetUser)
	admin.PATCH("/users/:id", adminH.UpdateUser)
}
