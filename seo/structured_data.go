package seo

import (
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/transform"
)

const schemaContext = "https://schema.org"

// BreadcrumbItem is one step of a breadcrumb trail
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// OrganizationName resolves the publisher name: the organization JSON name,
// then the Organization node of a JSON-LD graph, then the site title
func OrganizationName(site models.SiteConfig) string {
	org := site.OrganizationJSON
	if org == nil {
		return siteName(site)
	}
	if name, ok := org["name"].(string); ok && name != "" {
		return name
	}
	if graph, ok := org["@graph"].([]any); ok {
		for _, node := range graph {
			n, ok := node.(map[string]any)
			if !ok || n["@type"] != "Organization" {
				continue
			}
			if name, ok := n["name"].(string); ok && name != "" {
				return name
			}
		}
	}
	return siteName(site)
}

// OrganizationAndWebSite returns the site-wide JSON-LD documents. A complete
// JSON-LD organization document is returned as the single element. Otherwise
// an Organization node is built, followed by a WebSite node with a blog
// search action when a site url can be resolved.
func OrganizationAndWebSite(site models.SiteConfig, siteURL string) []map[string]any {
	org := site.OrganizationJSON
	if transform.IsJSONLD(org) {
		return []map[string]any{org}
	}

	orgName, _ := org["name"].(string)
	if strings.TrimSpace(orgName) == "" {
		orgName = siteName(site)
	}
	orgURL, _ := org["url"].(string)
	url := firstNonEmpty(orgURL, SiteBaseURL(siteURL))
	sameAs := stringList(org["sameAs"])

	organization := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     orgName,
	}
	if url != "" {
		organization["url"] = url
	}
	if site.Logo != "" {
		organization["logo"] = site.Logo
	}
	if len(sameAs) > 0 {
		organization["sameAs"] = sameAs
	}

	if url == "" {
		return []map[string]any{organization}
	}

	publisher := map[string]any{"@type": "Organization", "name": orgName}
	if site.Logo != "" {
		publisher["logo"] = site.Logo
	}
	website := map[string]any{
		"@context":  schemaContext,
		"@type":     "WebSite",
		"name":      siteName(site),
		"url":       url,
		"publisher": publisher,
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]any{
				"@type":       "EntryPoint",
				"urlTemplate": url + "/blog?search={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
	if site.SiteDescription != "" {
		website["description"] = site.SiteDescription
	}
	return []map[string]any{organization, website}
}

// Article builds the Article document for a post page
func Article(post models.Post, site models.SiteConfig, postURL string) map[string]any {
	publisherName := OrganizationName(site)
	author := strings.TrimSpace(post.Author)
	if author == "" {
		author = publisherName
	}

	publisher := map[string]any{"@type": "Organization", "name": publisherName}
	if site.Logo != "" {
		publisher["logo"] = map[string]any{"@type": "ImageObject", "url": site.Logo}
	}

	article := map[string]any{
		"@context":  schemaContext,
		"@type":     "Article",
		"headline":  post.Title,
		"author":    map[string]any{"@type": "Person", "name": author},
		"publisher": publisher,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Excerpt != "" {
		article["description"] = post.Excerpt
	}
	if post.FeaturedImage != "" {
		article["image"] = post.FeaturedImage
	}
	if post.PublishedAtISO != "" {
		article["datePublished"] = post.PublishedAtISO
	}
	return article
}

// Breadcrumbs builds a BreadcrumbList with 1-based positions, or nil when
// there is nothing to render
func Breadcrumbs(items []BreadcrumbItem) map[string]any {
	if len(items) == 0 {
		return nil
	}
	elements := make([]map[string]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

// Documents drops nil documents so callers can render the result directly
func Documents(docs ...map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

func stringList(v any) []string {
	var out []string
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
