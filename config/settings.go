package config

import (
	"strings"
	"time"
)

// Bounds for the per-request timeout against the content API
const (
	DefaultRequestTimeout = 10 * time.Second
	MinRequestTimeout     = 10 * time.Second
	MaxRequestTimeout     = 15 * time.Second
	ProbeTimeout          = 15 * time.Second
)

// Settings is the read-only process configuration, built once at startup
type Settings struct {
	StrapiAPIURL      string
	StrapiAPIToken    string
	TokenSSMParameter string
	StrapiVersion     int
	UseMock           bool
	RequestTimeout    time.Duration
	PostPopulate      []string

	SiteURL       string
	ContentFormat string
	Timezone      string
	DefaultAuthor string

	Port              string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	AcceptedOrigins   []string
	DiagnosticsSecret string

	LogLevel  string
	LogFormat string
}

// Load builds Settings from an environment map as returned by New
func Load(c map[string]string) Settings {
	apiURL := strings.TrimRight(strings.TrimSpace(GetString(c, "STRAPI_API_URL", "")), "/")

	siteURL := GetString(c, "NEXT_PUBLIC_SITE_URL", "")
	if siteURL == "" {
		siteURL = GetString(c, "SITE_URL", "")
	}

	version := GetInt(c, "STRAPI_VERSION", 5)
	if version != 4 {
		version = 5
	}

	contentFormat := strings.ToLower(GetString(c, "CONTENT_FORMAT", "html"))
	if contentFormat != "markdown" {
		contentFormat = "html"
	}

	return Settings{
		StrapiAPIURL:      apiURL,
		StrapiAPIToken:    GetString(c, "STRAPI_API_TOKEN", ""),
		TokenSSMParameter: GetString(c, "STRAPI_API_TOKEN_SSM_PARAMETER", ""),
		StrapiVersion:     version,
		UseMock:           GetBool(c, "STRAPI_MOCK", false) || apiURL == "",
		RequestTimeout:    clampTimeout(GetSeconds(c, "STRAPI_TIMEOUT_SECONDS", DefaultRequestTimeout)),
		PostPopulate:      GetList(c, "STRAPI_POST_POPULATE"),

		SiteURL:       strings.TrimRight(strings.TrimSpace(siteURL), "/"),
		ContentFormat: contentFormat,
		Timezone:      GetString(c, "SITE_TIMEZONE", "America/Sao_Paulo"),
		DefaultAuthor: GetString(c, "DEFAULT_AUTHOR", "OMIE"),

		Port:              GetString(c, "PORT", "8080"),
		ReadTimeout:       GetSeconds(c, "READ_TIMEOUT_SECONDS", 30*time.Second),
		WriteTimeout:      GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30*time.Second),
		IdleTimeout:       GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120*time.Second),
		AcceptedOrigins:   GetList(c, "ACCEPTED_ORIGINS"),
		DiagnosticsSecret: GetString(c, "DIAGNOSTICS_JWT_SECRET", ""),

		LogLevel:  GetString(c, "LOG_LEVEL", "info"),
		LogFormat: GetString(c, "LOG_FORMAT", "console"),
	}
}

func clampTimeout(d time.Duration) time.Duration {
	switch {
	case d < MinRequestTimeout:
		return MinRequestTimeout
	case d > MaxRequestTimeout:
		return MaxRequestTimeout
	default:
		return d
	}
}
