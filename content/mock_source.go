package content

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/transform"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtures struct {
	SiteConfig map[string]any   `yaml:"siteConfig"`
	Menus      []map[string]any `yaml:"menus"`
	Posts      []map[string]any `yaml:"posts"`
	Pages      []map[string]any `yaml:"pages"`
}

// MockSource serves the bundled fixtures. It never fails and never touches
// the network.
type MockSource struct {
	normalizer *transform.Normalizer
	data       fixtures
}

// NewMockSource loads the embedded fixtures
func NewMockSource(normalizer *transform.Normalizer) (*MockSource, error) {
	return newMockSourceFromYAML(normalizer, fixturesYAML)
}

func newMockSourceFromYAML(normalizer *transform.Normalizer, raw []byte) (*MockSource, error) {
	var data fixtures
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode mock fixtures: %w", err)
	}
	return &MockSource{normalizer: normalizer, data: data}, nil
}

// GetPosts applies category, search, start and limit the way the CMS does
func (m *MockSource) GetPosts(_ context.Context, opts models.PostListOptions) []models.Post {
	all := m.normalizer.Posts(m.data.Posts)
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	matched := make([]models.Post, 0, len(all))
	for _, p := range all {
		if category != "" && strings.ToLower(p.CategorySlug) != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Excerpt), search) {
			continue
		}
		matched = append(matched, p)
	}

	start := opts.EffectiveStart()
	if start >= len(matched) {
		return []models.Post{}
	}
	end := start + opts.EffectiveLimit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}

func (m *MockSource) GetPost(_ context.Context, slug string) *models.Post {
	if raw := findBySlug(m.data.Posts, slug); raw != nil {
		return m.normalizer.Post(raw)
	}
	return nil
}

func (m *MockSource) GetPostSlugs(context.Context) []string {
	return transform.PostSlugs(m.data.Posts)
}

func (m *MockSource) GetPage(_ context.Context, slug string) *models.Page {
	if raw := findBySlug(m.data.Pages, slug); raw != nil {
		return m.normalizer.Page(raw)
	}
	return nil
}

func (m *MockSource) GetMenus(context.Context) models.Menus {
	return menusFromRaw(m.normalizer, m.data.Menus)
}

func (m *MockSource) GetSiteConfig(context.Context) models.SiteConfig {
	return m.normalizer.SiteConfig(m.data.SiteConfig)
}

func findBySlug(raws []map[string]any, slug string) map[string]any {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	for _, raw := range raws {
		if s, _ := raw["slug"].(string); s == slug {
			return raw
		}
	}
	return nil
}
