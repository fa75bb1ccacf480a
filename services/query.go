package services

import (
	"net/url"
	"strconv"
	"strings"
)

// PopulateDialect is the encoding used for relation population and field
// selection. The two dialects are not interchangeable across Strapi versions.
type PopulateDialect int

const (
	// PopulateCSV encodes populate=a,b (Strapi v4)
	PopulateCSV PopulateDialect = iota
	// PopulateIndexed encodes populate[0]=a&populate[1]=b (Strapi v5)
	PopulateIndexed
)

// DialectForVersion maps a Strapi major version to its populate dialect
func DialectForVersion(version int) PopulateDialect {
	if version == 4 {
		return PopulateCSV
	}
	return PopulateIndexed
}

func (d PopulateDialect) String() string {
	if d == PopulateCSV {
		return "csv"
	}
	return "indexed"
}

type queryParam struct {
	key   string
	value string
}

// Query is an ordered list of Strapi query parameters. Bracketed keys such
// as filters[$or][0][title][$containsi] are kept readable on the wire.
type Query struct {
	params []queryParam
}

// Set replaces the value for key, or appends it
func (q *Query) Set(key, value string) *Query {
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value
			return q
		}
	}
	q.params = append(q.params, queryParam{key: key, value: value})
	return q
}

// SetInt is Set for integer values
func (q *Query) SetInt(key string, value int) *Query {
	return q.Set(key, strconv.Itoa(value))
}

// Get returns the value for key or ""
func (q Query) Get(key string) string {
	for _, p := range q.params {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// Has reports whether key is present
func (q Query) Has(key string) bool {
	for _, p := range q.params {
		if p.key == key {
			return true
		}
	}
	return false
}

// Populate adds relation population in the given dialect
func (q *Query) Populate(dialect PopulateDialect, fields ...string) *Query {
	return q.list("populate", dialect, fields)
}

// Fields restricts the returned attributes in the given dialect
func (q *Query) Fields(dialect PopulateDialect, fields ...string) *Query {
	return q.list("fields", dialect, fields)
}

func (q *Query) list(name string, dialect PopulateDialect, values []string) *Query {
	if len(values) == 0 {
		return q
	}
	if dialect == PopulateCSV {
		return q.Set(name, strings.Join(values, ","))
	}
	for i, v := range values {
		q.Set(name+"["+strconv.Itoa(i)+"]", v)
	}
	return q
}

// Encode renders the query string in insertion order
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeKey(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// escapeKey escapes a parameter name but keeps the bracket syntax Strapi parses
func escapeKey(key string) string {
	escaped := url.QueryEscape(key)
	return strings.NewReplacer("%5B", "[", "%5D", "]", "%24", "$").Replace(escaped)
}
