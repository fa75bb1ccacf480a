package content

import (
	"context"

	"github.com/rpupo63/omie-site-backend/models"
	"golang.org/x/sync/errgroup"
)

// PostView is what a post page renders from
type PostView struct {
	Post *models.Post
	Site models.SiteConfig
}

// LoadPostView fetches the post and the site configuration concurrently.
// Source methods never fail, so the group only joins the two fetches.
func LoadPostView(ctx context.Context, src Source, slug string) PostView {
	var view PostView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Post = src.GetPost(gctx, slug)
		return nil
	})
	g.Go(func() error {
		view.Site = src.GetSiteConfig(gctx)
		return nil
	})
	_ = g.Wait()
	return view
}
