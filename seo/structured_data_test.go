package seo

import (
	"testing"

	"github.com/rpupo63/omie-site-backend/models"
)

func TestOrganizationAndWebSitePassthrough(t *testing.T) {
	site := models.DefaultSiteConfig()
	graph := map[string]any{
		"@context": "https://schema.org",
		"@graph":   []any{map[string]any{"@type": "Organization", "name": "Omie Graph"}},
	}
	site.OrganizationJSON = graph

	docs := OrganizationAndWebSite(site, "https://omie.com.br")
	if len(docs) != 1 {
		t.Fatalf("expected one document, got %d", len(docs))
	}
	if _, ok := docs[0]["@graph"]; !ok || len(docs[0]) != len(graph) {
		t.Errorf("document was modified: %v", docs[0])
	}
	if got := OrganizationName(site); got != "Omie Graph" {
		t.Errorf("OrganizationName = %q", got)
	}
}

func TestOrganizationAndWebSiteSynthesized(t *testing.T) {
	site := models.DefaultSiteConfig()
	site.Logo = "https://cdn.example.com/logo.svg"

	docs := OrganizationAndWebSite(site, "")
	if len(docs) != 1 || docs[0]["@type"] != "Organization" {
		t.Fatalf("without url: %v", docs)
	}
	if _, ok := docs[0]["url"]; ok {
		t.Errorf("empty url must be omitted: %v", docs[0])
	}

	docs = OrganizationAndWebSite(site, "https://omie.com.br/")
	if len(docs) != 2 || docs[0]["@type"] != "Organization" || docs[1]["@type"] != "WebSite" {
		t.Fatalf("with url: %v", docs)
	}
	action := docs[1]["potentialAction"].(map[string]any)
	target := action["target"].(map[string]any)
	if target["urlTemplate"] != "https://omie.com.br/blog?search={search_term_string}" {
		t.Errorf("urlTemplate = %v", target["urlTemplate"])
	}

	site.OrganizationJSON = map[string]any{
		"name":   "Omie SA",
		"url":    "https://org.example.com",
		"sameAs": []string{"https://x.com/omie", ""},
	}
	docs = OrganizationAndWebSite(site, "")
	if len(docs) != 2 || docs[0]["name"] != "Omie SA" || docs[0]["url"] != "https://org.example.com" {
		t.Errorf("organization url must make the site resolvable: %v", docs)
	}
	sameAs, _ := docs[0]["sameAs"].([]string)
	if len(sameAs) != 1 {
		t.Errorf("sameAs = %v", docs[0]["sameAs"])
	}
}

func TestArticle(t *testing.T) {
	site := models.DefaultSiteConfig()
	site.OrganizationJSON = map[string]any{"name": "Omie SA"}
	post := models.Post{
		Title:          "Fluxo de caixa",
		Excerpt:        "Resumo",
		PublishedAtISO: "2026-01-20T09:30:00.000Z",
	}

	doc := Article(post, site, "https://omie.com.br/blog/fluxo-de-caixa")
	author := doc["author"].(map[string]any)
	if author["name"] != "Omie SA" {
		t.Errorf("author fallback = %v", author["name"])
	}
	if _, ok := doc["image"]; ok {
		t.Error("empty image must be omitted")
	}
	if doc["datePublished"] != post.PublishedAtISO || doc["description"] != "Resumo" {
		t.Errorf("article = %v", doc)
	}
	page := doc["mainEntityOfPage"].(map[string]any)
	if page["@id"] != "https://omie.com.br/blog/fluxo-de-caixa" {
		t.Errorf("mainEntityOfPage = %v", page)
	}

	post.Author = "Ana"
	if Article(post, site, "")["author"].(map[string]any)["name"] != "Ana" {
		t.Error("post author must win")
	}
}

func TestBreadcrumbs(t *testing.T) {
	if Breadcrumbs(nil) != nil || Breadcrumbs([]BreadcrumbItem{}) != nil {
		t.Error("empty breadcrumbs must be nil")
	}

	doc := Breadcrumbs([]BreadcrumbItem{
		{Name: "Início", URL: "https://omie.com.br"},
		{Name: "Blog", URL: "https://omie.com.br/blog"},
	})
	elements := doc["itemListElement"].([]map[string]any)
	if len(elements) != 2 || elements[0]["position"] != 1 || elements[1]["position"] != 2 {
		t.Errorf("elements = %v", elements)
	}

	if docs := Documents(doc, nil, Breadcrumbs(nil)); len(docs) != 1 {
		t.Errorf("Documents kept nils: %v", docs)
	}
}
