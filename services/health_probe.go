package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/omie-site-backend/config"
)

// HealthReport is the diagnostic view of the content API configuration.
// It reports whether the token is set and its length, never its value.
type HealthReport struct {
	OK     bool         `json:"ok"`
	Env    HealthEnv    `json:"env"`
	Strapi HealthStrapi `json:"strapi"`
	Hint   string       `json:"hint"`
}

type HealthEnv struct {
	StrapiAPIURL      string `json:"STRAPI_API_URL"`
	StrapiAPIURLSet   bool   `json:"STRAPI_API_URL_set"`
	StrapiTokenSet    bool   `json:"STRAPI_API_TOKEN_set"`
	StrapiTokenLength int    `json:"STRAPI_API_TOKEN_length"`
	MockMode          bool   `json:"STRAPI_MOCK"`
}

type HealthStrapi struct {
	RequestURL  string   `json:"requestUrl"`
	Status      *int     `json:"status"`
	OK          bool     `json:"ok"`
	ErrorDetail *string  `json:"errorDetail"`
	HeadersSent []string `json:"headersSent"`
}

// Probe checks the environment and performs one live request against the
// menu collection. It always returns a report; failures are described in it.
func (c *StrapiClient) Probe(ctx context.Context, mock bool) HealthReport {
	report := HealthReport{
		Env: HealthEnv{
			StrapiAPIURL:      c.baseURL,
			StrapiAPIURLSet:   c.baseURL != "",
			StrapiTokenSet:    c.token != "",
			StrapiTokenLength: len(c.token),
			MockMode:          mock,
		},
		Strapi: HealthStrapi{HeadersSent: []string{}},
	}
	if report.Env.StrapiAPIURL == "" {
		report.Env.StrapiAPIURL = "(empty)"
	}

	if c.baseURL == "" {
		report.Hint = "STRAPI_API_URL is empty. Set it in .env and restart the server."
		return report
	}
	if c.token == "" {
		report.Hint = "STRAPI_API_TOKEN is empty. Create a token in Strapi (Settings > API Tokens) and set it in .env."
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, config.ProbeTimeout)
	defer cancel()

	var q Query
	q.SetInt("pagination[pageSize]", 5)
	requestURL := c.baseURL + menusPath + "?" + q.Encode()
	report.Strapi.RequestURL = requestURL

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return probeFailed(report, err)
	}
	setStrapiHeaders(req, c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return probeFailed(report, err)
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	report.Strapi.Status = &status
	report.Strapi.OK = status >= 200 && status < 300
	report.Strapi.HeadersSent = []string{
		"Accept: application/json",
		"Authorization: Bearer ***",
		"Content-Type: application/json",
		"Strapi-Response-Format: v4",
		"User-Agent: " + userAgent,
	}

	if !report.Strapi.OK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		detail := errorDetail(body)
		report.Strapi.ErrorDetail = &detail
		report.Hint = fmt.Sprintf(`Strapi answered %d. See "strapi.errorDetail" and check the Menu content-type permissions.`, status)
		return report
	}

	c.logger.Debug().Dur("duration", time.Since(start)).Msg("Strapi probe succeeded")
	report.OK = true
	report.Hint = "Connection OK. Environment loaded and the menus API answered 200."
	return report
}

func probeFailed(report HealthReport, err error) HealthReport {
	detail := err.Error()
	report.Strapi.ErrorDetail = &detail
	report.Hint = "Could not connect (network/timeout). Check STRAPI_API_URL, firewalls and whether Strapi is up."
	return report
}
