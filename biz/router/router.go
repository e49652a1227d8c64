package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/fkventa/clubsite/biz/handler"
	"github.com/fkventa/clubsite/biz/middleware"
)

// withLock prepends the write-lock middleware, when enabled, to a terminal
// handler. Admin reads skip the lock; only mutations serialize.
func withLock(h app.HandlerFunc) []app.HandlerFunc {
	chain := append([]app.HandlerFunc{}, middleware.WriteLockMw()...)
	return append(chain, h)
}

// Register wires all site routes onto the server.
func Register(r *server.Hertz, h *handler.Handler, adminToken string) {
	v1 := r.Group("/api/v1")

	// Public content endpoints consumed by the site frontend.
	v1.GET("/settings/:domain", h.GetSettings)
	v1.GET("/news", h.ListPublishedNews)
	v1.GET("/news/:slug", h.GetNewsBySlug)
	v1.GET("/gallery", h.ListActiveGallery)
	v1.GET("/calendar", h.ListPublishedEvents)
	v1.GET("/partners", h.ListActivePartners)
	v1.GET("/files/*filepath", h.GetFile)
	v1.POST("/contact", h.Contact)

	v1.GET("/name-days", h.NamedayToday)
	v1.POST("/name-days", h.NamedayForDate)
	v1.PUT("/name-days", h.NamedayRefresh)

	// Back-office endpoints behind the shared admin token.
	admin := v1.Group("/admin", middleware.AdminAuth(adminToken))

	admin.GET("/settings/:domain", h.GetAdminSettings)
	admin.POST("/settings/:domain", withLock(h.SaveSettings)...)

	admin.GET("/news", h.ListNews)
	admin.POST("/news", withLock(h.CreateNews)...)
	admin.PUT("/news/:id", withLock(h.UpdateNews)...)
	admin.DELETE("/news/:id", withLock(h.DeleteNews)...)

	admin.GET("/gallery", h.ListGallery)
	admin.POST("/gallery", withLock(h.CreateGalleryItem)...)
	admin.PUT("/gallery/:id", withLock(h.UpdateGalleryItem)...)
	admin.DELETE("/gallery/:id", withLock(h.DeleteGalleryItem)...)

	admin.GET("/calendar", h.ListEvents)
	admin.POST("/calendar", withLock(h.CreateEvent)...)
	admin.PUT("/calendar/:id", withLock(h.UpdateEvent)...)
	admin.DELETE("/calendar/:id", withLock(h.DeleteEvent)...)

	admin.GET("/partners", h.ListPartners)
	admin.POST("/partners", withLock(h.CreatePartner)...)
	admin.PUT("/partners/:id", withLock(h.UpdatePartner)...)
	admin.DELETE("/partners/:id", withLock(h.DeletePartner)...)

	admin.GET("/about/values", h.ListAboutValues)
	admin.POST("/about/values", withLock(h.CreateAboutValue)...)
	admin.PUT("/about/values/:id", withLock(h.UpdateAboutValue)...)
	admin.DELETE("/about/values/:id", withLock(h.DeleteAboutValue)...)

	admin.GET("/about/stats", h.ListAboutStats)
	admin.POST("/about/stats", withLock(h.CreateAboutStat)...)
	admin.PUT("/about/stats/:id", withLock(h.UpdateAboutStat)...)
	admin.DELETE("/about/stats/:id", withLock(h.DeleteAboutStat)...)

	admin.POST("/upload", withLock(h.Upload)...)

	r.GET("/ping", handler.Ping)
}
