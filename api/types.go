package api

import (
	"github.com/rpupo63/omie-site-backend/content"
	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/seo"
	"github.com/rpupo63/omie-site-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler contentHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"limit"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// PostCollection is a page of posts
type PostCollection struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

type PostSlugs struct {
	Slugs []string `json:"slugs"`
}

// PostDetail is everything a post page renders
type PostDetail struct {
	Post           models.Post      `json:"post"`
	Metadata       seo.Metadata     `json:"metadata"`
	StructuredData []map[string]any `json:"structuredData"`
}

// PageDetail is everything an institutional page renders
type PageDetail struct {
	Page           models.Page      `json:"page"`
	Metadata       seo.Metadata     `json:"metadata"`
	StructuredData []map[string]any `json:"structuredData"`
}

// StrapiHealthResponse is the probe report plus fallback counters
type StrapiHealthResponse struct {
	services.HealthReport
	Degraded *content.DegradedStats `json:"degraded,omitempty"`
}

type LivenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Mock   bool   `json:"mock"`
}
