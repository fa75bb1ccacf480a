package transform

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// MediaURL extracts the url of a media reference in any of the shapes the
// CMS produces: {data:{attributes:{url}}}, {data:{url}}, {url} or a string.
// Absent references yield "".
func MediaURL(ref any) string {
	switch t := ref.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if data, ok := t["data"]; ok {
			switch d := data.(type) {
			case map[string]any:
				return MediaURL(d)
			case []any:
				if len(d) > 0 {
					return MediaURL(d[0])
				}
			}
			return ""
		}
		if attrs, ok := t["attributes"].(map[string]any); ok {
			return MediaURL(attrs)
		}
		if url, ok := t["url"].(string); ok {
			return strings.TrimSpace(url)
		}
	case []any:
		if len(t) > 0 {
			return MediaURL(t[0])
		}
	}
	return ""
}

// ResolveURL makes a media url absolute against base. Absolute urls pass
// through unchanged, so resolving twice is the same as resolving once.
// A relative url with no usable base resolves to "", as does any url with
// a scheme other than http or https.
func ResolveURL(base, url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if isAbsoluteURL(url) {
		return url
	}
	if schemePattern.MatchString(url) {
		return ""
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}

	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if !isAbsoluteURL(base) {
		return ""
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return base + url
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ResolveMediaURL extracts and resolves a media reference against the API base
func (n *Normalizer) ResolveMediaURL(ref any) string {
	return ResolveURL(n.apiBase, MediaURL(ref))
}
