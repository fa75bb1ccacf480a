package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rpupo63/omie-site-backend/models"
)

func TestBuildMetadataFallbacks(t *testing.T) {
	site := models.DefaultSiteConfig()
	site.SiteTitle = "Omie"

	md := BuildMetadataFromSeo(nil, site, Fallbacks{PageTitle: "Blog"})
	if md.Title != "Blog | Omie" {
		t.Errorf("title = %q", md.Title)
	}
	if md.Description != site.SiteDescription {
		t.Errorf("description = %q", md.Description)
	}
	if md.Robots != nil {
		t.Errorf("robots must be omitted, got %+v", md.Robots)
	}
	if md.OpenGraph.Locale != "pt_BR" || md.OpenGraph.Images != nil {
		t.Errorf("open graph = %+v", md.OpenGraph)
	}

	encoded, err := json.Marshal(md)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encoded), "canonical") || strings.Contains(string(encoded), "robots") {
		t.Errorf("empty canonical or robots leaked: %s", encoded)
	}
}

func TestBuildMetadataOverrides(t *testing.T) {
	site := models.DefaultSiteConfig()
	seo := &models.SeoData{
		MetaTitle:       "Título próprio",
		MetaDescription: "Descrição própria",
		CanonicalURL:    "https://omie.com.br/canonical",
		NoIndex:         true,
	}
	md := BuildMetadataFromSeo(seo, site, Fallbacks{
		PageTitle: "Ignorado",
		URL:       "https://omie.com.br/blog/x",
		Image:     "https://cdn.example.com/x.png",
	})

	if md.Title != "Título próprio" || md.Description != "Descrição própria" {
		t.Errorf("overrides not used: %+v", md)
	}
	if md.Canonical != "https://omie.com.br/canonical" || md.OpenGraph.URL != md.Canonical {
		t.Errorf("canonical = %q / %q", md.Canonical, md.OpenGraph.URL)
	}
	if md.Robots == nil || md.Robots.Index || !md.Robots.Follow {
		t.Errorf("robots = %+v", md.Robots)
	}
	if len(md.OpenGraph.Images) != 1 || md.OpenGraph.Images[0].URL != "https://cdn.example.com/x.png" {
		t.Errorf("images = %+v", md.OpenGraph.Images)
	}
}

func TestBuildMetadataCanonicalFromCaller(t *testing.T) {
	md := BuildMetadataFromSeo(&models.SeoData{MetaTitle: "  "}, models.DefaultSiteConfig(), Fallbacks{
		PageTitle: "Sobre",
		URL:       "https://omie.com.br/sobre",
	})
	if md.Title != "Sobre | OMIE" {
		t.Errorf("blank override title must fall back: %q", md.Title)
	}
	if md.Canonical != "https://omie.com.br/sobre" {
		t.Errorf("canonical = %q", md.Canonical)
	}
}

func TestSiteBaseURL(t *testing.T) {
	if got := SiteBaseURL(" https://omie.com.br/ "); got != "https://omie.com.br" {
		t.Errorf("SiteBaseURL = %q", got)
	}
	if got := SiteBaseURL(""); got != "" {
		t.Errorf("SiteBaseURL = %q", got)
	}
}
