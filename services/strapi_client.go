package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/omie-site-backend/config"
	"github.com/rpupo63/omie-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RawEntity is an undecoded CMS entity: either the v4 envelope
// ({id, attributes: {...}}) or the v5 flat shape ({id, documentId, ...})
type RawEntity = map[string]any

const (
	userAgent         = "omie-site-backend/1.0"
	maxErrorDetailLen = 200
	maxResponseBytes  = 10 * 1024 * 1024
)

var defaultPostPopulate = []string{"featuredImage", "category"}

// StrapiClient issues read-only requests against the Strapi REST API.
// It never retries and never caches; every call is a single request bounded
// by the configured timeout.
type StrapiClient struct {
	baseURL      string
	token        string
	timeout      time.Duration
	dialect      PopulateDialect
	postPopulate []string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// ClientOptions configures a StrapiClient
type ClientOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// Version selects the populate dialect (4 or 5)
	Version      int
	PostPopulate []string
	HTTPClient   *http.Client
}

// NewStrapiClient creates a client for the given API base URL
func NewStrapiClient(opts ClientOptions) *StrapiClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	postPopulate := opts.PostPopulate
	if len(postPopulate) == 0 {
		postPopulate = defaultPostPopulate
	}

	return &StrapiClient{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		token:        opts.Token,
		timeout:      timeout,
		dialect:      DialectForVersion(opts.Version),
		postPopulate: postPopulate,
		httpClient:   httpClient,
		logger:       log.With().Str("component", "strapiClient").Logger(),
	}
}

// NewStrapiClientFromSettings wires a client from process settings
func NewStrapiClientFromSettings(s config.Settings) *StrapiClient {
	return NewStrapiClient(ClientOptions{
		BaseURL:      s.StrapiAPIURL,
		Token:        s.StrapiAPIToken,
		Timeout:      s.RequestTimeout,
		Version:      s.StrapiVersion,
		PostPopulate: s.PostPopulate,
	})
}

// BaseURL returns the API base without trailing slash
func (c *StrapiClient) BaseURL() string {
	return c.baseURL
}

// Dialect returns the populate dialect the client encodes queries with
func (c *StrapiClient) Dialect() PopulateDialect {
	return c.dialect
}

// envelope is the {data: ...} wrapper every Strapi response uses
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// get performs a single GET and returns the raw "data" member of the response
func (c *StrapiClient) get(ctx context.Context, path string, query Query) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		url += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create Strapi request: %w", err)
	}
	setStrapiHeaders(req, c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewGatewayTransportError(path, err, isTimeout(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.NewGatewayTransportError(path, err, isTimeout(err))
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Strapi request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.NewGatewayStatusError(resp.StatusCode, path, errorDetail(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errs.NewGatewayDecodeError(resp.StatusCode, path, err)
	}
	return env.Data, nil
}

// getCollection decodes "data" as a list. A non-list payload yields an empty list.
func (c *StrapiClient) getCollection(ctx context.Context, path string, query Query) ([]RawEntity, error) {
	data, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var list []RawEntity
	if err := json.Unmarshal(data, &list); err != nil {
		return []RawEntity{}, nil
	}
	out := make([]RawEntity, 0, len(list))
	for _, item := range list {
		if item != nil {
			out = append(out, item)
		}
	}
	return out, nil
}

// getFirst returns the first entity of a filtered collection or nil
func (c *StrapiClient) getFirst(ctx context.Context, path string, query Query) (RawEntity, error) {
	list, err := c.getCollection(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func setStrapiHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Strapi-Response-Format", "v4")
	req.Header.Set("User-Agent", userAgent)
}

// errorDetail extracts a readable message from an error body:
// error.message, then message, then a truncated raw snippet
func errorDetail(body []byte) string {
	var parsed struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return parsed.Error.Message
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return truncate(strings.TrimSpace(string(body)), maxErrorDetailLen)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
