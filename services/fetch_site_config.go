package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/omie-site-backend/errs"
)

const siteConfigPath = "/api/site-config"

var siteConfigPopulate = []string{"logo", "favicon", "imagemRedesSociais", "organizationStructuredData"}

// FetchSiteConfig returns the site-config single type. A 404 means the
// singleton was never published and yields nil without error.
func (c *StrapiClient) FetchSiteConfig(ctx context.Context) (RawEntity, error) {
	var q Query
	q.Populate(c.dialect, siteConfigPopulate...)

	data, err := c.get(ctx, siteConfigPath, q)
	if err != nil {
		var gwErr *errs.GatewayError
		if errors.As(err, &gwErr) && gwErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entity RawEntity
	if err := json.Unmarshal(data, &entity); err != nil {
		// a list or scalar where an object was expected
		return nil, nil
	}
	return entity, nil
}
