package content

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rpupo63/omie-site-backend/config"
	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/transform"
)

func newTestMock(t *testing.T) *MockSource {
	t.Helper()
	src, err := NewMockSource(transform.New(transform.Options{}))
	if err != nil {
		t.Fatalf("NewMockSource: %v", err)
	}
	return src
}

func TestMockSourcePosts(t *testing.T) {
	src := newTestMock(t)
	ctx := context.Background()

	all := src.GetPosts(ctx, models.PostListOptions{})
	if len(all) != 3 {
		t.Fatalf("expected 3 fixture posts, got %d", len(all))
	}
	if all[0].Date != "16 de fevereiro de 2026" || all[0].Author != "Equipe OMIE" {
		t.Errorf("first post = %+v", all[0])
	}
	if all[1].Author != models.DefaultAuthor {
		t.Errorf("default author not applied: %q", all[1].Author)
	}

	finance := src.GetPosts(ctx, models.PostListOptions{Category: "FINANCAS"})
	if len(finance) != 2 {
		t.Errorf("category filter: %d posts", len(finance))
	}

	search := src.GetPosts(ctx, models.PostListOptions{Search: "planilhas"})
	if len(search) != 1 || search[0].Slug != "conciliacao-bancaria" {
		t.Errorf("search by excerpt: %+v", search)
	}

	page := src.GetPosts(ctx, models.PostListOptions{Limit: 1, Start: 1})
	if len(page) != 1 || page[0].Slug != "fluxo-de-caixa" {
		t.Errorf("pagination: %+v", page)
	}

	beyond := src.GetPosts(ctx, models.PostListOptions{Start: 10})
	if beyond == nil || len(beyond) != 0 {
		t.Errorf("start past the end: %#v", beyond)
	}
}

func TestMockSourceLookups(t *testing.T) {
	src := newTestMock(t)
	ctx := context.Background()

	if post := src.GetPost(ctx, "como-emitir-nfe"); post == nil || post.SEO == nil || post.SEO.MetaTitle != "Como emitir NF-e" {
		t.Errorf("post = %+v", post)
	}
	if src.GetPost(ctx, "missing") != nil {
		t.Error("unknown slug should be nil")
	}
	if page := src.GetPage(ctx, "privacidade"); page == nil || page.SEO == nil || !page.SEO.NoIndex {
		t.Errorf("page = %+v", page)
	}
	if slugs := src.GetPostSlugs(ctx); len(slugs) != 3 {
		t.Errorf("slugs = %v", slugs)
	}

	menus := src.GetMenus(ctx)
	if len(menus.Header) != 3 || len(menus.Header[0].Children) != 2 || len(menus.Footer) != 2 {
		t.Errorf("menus = %+v", menus)
	}

	cfg := src.GetSiteConfig(ctx)
	if cfg.LogoAlt != "Logo OMIE" || cfg.OrganizationJSON["url"] != "https://www.omie.com.br" {
		t.Errorf("site config = %+v", cfg)
	}
}

func TestMockSourceRejectsBadFixtures(t *testing.T) {
	if _, err := newMockSourceFromYAML(transform.New(transform.Options{}), []byte("posts: [")); err == nil {
		t.Error("expected decode error")
	}
}

func TestNewSourceSelectsMock(t *testing.T) {
	src, err := NewSource(config.Settings{UseMock: true}, &fakeGateway{}, transform.New(transform.Options{}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*MockSource); !ok {
		t.Errorf("expected mock source, got %T", src)
	}

	live, err := NewSource(config.Settings{StrapiAPIURL: "https://cms.example.com"}, &fakeGateway{}, transform.New(transform.Options{}), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := live.(*StrapiSource); !ok {
		t.Errorf("expected Strapi source, got %T", live)
	}
}

type countingSource struct {
	*MockSource
	calls atomic.Int32
}

func (c *countingSource) GetPost(ctx context.Context, slug string) *models.Post {
	c.calls.Add(1)
	return c.MockSource.GetPost(ctx, slug)
}

func (c *countingSource) GetSiteConfig(ctx context.Context) models.SiteConfig {
	c.calls.Add(1)
	return c.MockSource.GetSiteConfig(ctx)
}

func TestLoadPostView(t *testing.T) {
	src := &countingSource{MockSource: newTestMock(t)}
	view := LoadPostView(context.Background(), src, "fluxo-de-caixa")
	if view.Post == nil || view.Post.Slug != "fluxo-de-caixa" {
		t.Errorf("post = %+v", view.Post)
	}
	if view.Site.SiteTitle != "OMIE" {
		t.Errorf("site = %+v", view.Site)
	}
	if src.calls.Load() != 2 {
		t.Errorf("expected both fetches, got %d", src.calls.Load())
	}

	missing := LoadPostView(context.Background(), src, "missing")
	if missing.Post != nil || missing.Site.SiteTitle == "" {
		t.Errorf("missing post view = %+v", missing)
	}
}
