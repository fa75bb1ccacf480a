package transform

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes anything that looks like a tag and trims the result.
// Entities are left as they are.
func StripHTML(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

const displayDateLayout = "02 de January de 2006"

// FormatDate renders t in loc as a Brazilian Portuguese long date,
// e.g. "16 de fevereiro de 2026"
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return strings.ToLower(monday.Format(t.In(loc), displayDateLayout, monday.LocalePtBR))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// timestamp picks publishedAt, then createdAt, then now. The returned ISO
// string is the source value when one was used, so the display date and the
// ISO form always describe the same instant.
func (n *Normalizer) timestamp(raw map[string]any) (time.Time, string) {
	for _, key := range []string{"publishedAt", "createdAt"} {
		s := stringField(raw, key)
		if s == "" {
			continue
		}
		if t, ok := parseTimestamp(s); ok {
			return t, strings.TrimSpace(s)
		}
	}
	now := n.now().UTC()
	return now, now.Format(time.RFC3339)
}

// body returns rich content verbatim, or rendered when markdown is enabled
func (n *Normalizer) body(content string) string {
	if n.markdown == nil || content == "" {
		return content
	}
	var buf bytes.Buffer
	if err := n.markdown.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}
