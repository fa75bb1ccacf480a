package api

import (
	"time"

	"github.com/rpupo63/omie-site-backend/config"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, settings config.Settings, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(deps.Source, settings.SiteURL),
		healthHandler:  newHealthHandler(deps.Prober, deps.Degraded, settings.UseMock, startupTime),
	}
}
