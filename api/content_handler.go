package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/omie-site-backend/content"
	"github.com/rpupo63/omie-site-backend/errs"
	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	blogPath        = "/blog"
	blogTitle       = "Blog"
	blogDescription = "Artigos e conteúdos sobre gestão, contabilidade e ERP para sua empresa."
	homeCrumb       = "Início"
)

type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	source    content.Source
	siteURL   string
}

func newContentHandler(source content.Source, siteURL string) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		source:    source,
		siteURL:   seo.SiteBaseURL(siteURL),
	}
}

// absolute joins path to the public site url; without one the path stays relative
func (h contentHandler) absolute(path string) string {
	return h.siteURL + path
}

// getPosts lists posts
// @Summary List blog posts
// @Tags Posts
// @Produce json
// @Param limit query int false "Page size (up to 100; 0 or absent selects 10)"
// @Param start query int false "Offset"
// @Param category query string false "Category slug"
// @Param search query string false "Matches title or excerpt"
// @Success 200 {object} PostCollection
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Router /posts [get]
func (h contentHandler) getPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parsePostListOptions(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts := h.source.GetPosts(r.Context(), opts)
		h.responder.WriteJSON(w, http.StatusOK, PostCollection{Posts: posts, Total: len(posts)})
	}
}

// getPostSlugs lists every post slug, for static generation
// @Summary List post slugs
// @Tags Posts
// @Produce json
// @Success 200 {object} PostSlugs
// @Router /posts/slugs [get]
func (h contentHandler) getPostSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, PostSlugs{Slugs: h.source.GetPostSlugs(r.Context())})
	}
}

// getPost returns a post with its metadata and structured data
// @Summary Get a blog post
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} PostDetail
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /posts/{slug} [get]
func (h contentHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		view := content.LoadPostView(r.Context(), h.source, slug)
		if view.Post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post", slug))
			return
		}

		post := *view.Post
		postURL := h.absolute(blogPath + "/" + post.Slug)
		metadata := seo.BuildMetadataFromSeo(post.SEO, view.Site, seo.Fallbacks{
			PageTitle: post.Title,
			URL:       postURL,
			Image:     post.FeaturedImage,
		})
		breadcrumbs := seo.Breadcrumbs([]seo.BreadcrumbItem{
			{Name: homeCrumb, URL: h.absolute("/")},
			{Name: blogTitle, URL: h.absolute(blogPath)},
			{Name: post.Title, URL: postURL},
		})

		h.responder.WriteJSON(w, http.StatusOK, PostDetail{
			Post:           post,
			Metadata:       metadata,
			StructuredData: seo.Documents(seo.Article(post, view.Site, postURL), breadcrumbs),
		})
	}
}

// getPage returns an institutional page with its metadata
// @Summary Get a page
// @Tags Pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} PageDetail
// @Failure 404 {object} ErrorResponse "Page not found"
// @Router /pages/{slug} [get]
func (h contentHandler) getPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		page := h.source.GetPage(r.Context(), slug)
		if page == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("page", slug))
			return
		}

		site := h.source.GetSiteConfig(r.Context())
		pageURL := h.absolute("/" + page.Slug)
		metadata := seo.BuildMetadataFromSeo(page.SEO, site, seo.Fallbacks{
			PageTitle: page.Title,
			URL:       pageURL,
			Image:     firstNonEmpty(page.FeaturedImage, site.SocialImage),
		})
		breadcrumbs := seo.Breadcrumbs([]seo.BreadcrumbItem{
			{Name: homeCrumb, URL: h.absolute("/")},
			{Name: page.Title, URL: pageURL},
		})

		h.responder.WriteJSON(w, http.StatusOK, PageDetail{
			Page:           *page,
			Metadata:       metadata,
			StructuredData: seo.Documents(breadcrumbs),
		})
	}
}

// getMenus returns the header and footer navigation
// @Summary Get menus
// @Tags Layout
// @Produce json
// @Success 200 {object} models.Menus
// @Router /menus [get]
func (h contentHandler) getMenus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, h.source.GetMenus(r.Context()))
	}
}

// getSiteConfig returns the site configuration, defaults included
// @Summary Get site configuration
// @Tags Layout
// @Produce json
// @Success 200 {object} models.SiteConfig
// @Router /site-config [get]
func (h contentHandler) getSiteConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, h.source.GetSiteConfig(r.Context()))
	}
}

// getStructuredData returns the site-wide Organization/WebSite JSON-LD
// @Summary Get site structured data
// @Tags Layout
// @Produce json
// @Success 200 {array} object
// @Router /structured-data [get]
func (h contentHandler) getStructuredData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := h.source.GetSiteConfig(r.Context())
		h.responder.WriteJSON(w, http.StatusOK, seo.OrganizationAndWebSite(site, h.siteURL))
	}
}

// getBlogMetadata returns the metadata of the blog listing page
// @Summary Get blog listing metadata
// @Tags Posts
// @Produce json
// @Success 200 {object} seo.Metadata
// @Router /metadata/blog [get]
func (h contentHandler) getBlogMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := h.source.GetSiteConfig(r.Context())
		metadata := seo.BuildMetadataFromSeo(&models.SeoData{MetaDescription: blogDescription}, site, seo.Fallbacks{
			PageTitle: blogTitle,
			URL:       h.absolute(blogPath),
			Image:     site.SocialImage,
		})
		h.responder.WriteJSON(w, http.StatusOK, metadata)
	}
}

func parsePostListOptions(r *http.Request) (models.PostListOptions, error) {
	q := r.URL.Query()
	opts := models.PostListOptions{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errs.NewInvalidFieldError("limit", "must be an integer")
		}
		opts.Limit = n
	}
	if v := q.Get("start"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errs.NewInvalidFieldError("start", "must be an integer")
		}
		opts.Start = n
	}
	if err := opts.Validate(); err != nil {
		return opts, invalidFieldFromValidation(err)
	}
	return opts, nil
}

// invalidFieldFromValidation reports the first failing field of a
// validation.Errors map as a 400
func invalidFieldFromValidation(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewInvalidFieldError("query", err.Error())
	}
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return errs.NewInvalidFieldError(fields[0], fieldErrs[fields[0]].Error())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
