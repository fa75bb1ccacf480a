package api

import (
	"github.com/go-chi/chi/v5"
)

// setupContentRoutes registers the public read-only routes and the guarded diagnostics route
func setupContentRoutes(r chi.Router, handlers *routeHandlers, authMiddleware diagnosticsAuth) {
	r.Get("/healthz", handlers.healthHandler.liveness())

	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		// Blog
		r.Get("/posts", handlers.contentHandler.getPosts())
		r.Get("/posts/slugs", handlers.contentHandler.getPostSlugs())
		r.Get("/posts/{slug}", handlers.contentHandler.getPost())
		r.Get("/metadata/blog", handlers.contentHandler.getBlogMetadata())

		// Institutional pages and layout
		r.Get("/pages/{slug}", handlers.contentHandler.getPage())
		r.Get("/menus", handlers.contentHandler.getMenus())
		r.Get("/site-config", handlers.contentHandler.getSiteConfig())
		r.Get("/structured-data", handlers.contentHandler.getStructuredData())

		// Diagnostics
		r.With(authMiddleware.authenticate).Get("/api/strapi-health", handlers.healthHandler.strapiHealth())
	})
}
