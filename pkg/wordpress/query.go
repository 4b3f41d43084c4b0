package wordpress

import (
	"net/url"
	"strings"
)

// query is an insertion-ordered query string. url.Values sorts keys on
// Encode, which would reorder the fixed parameters the API is called with.
type query []queryParam

type queryParam struct {
	key   string
	value string
}

// Set replaces the value of key in place, or appends it.
func (q *query) Set(key, value string) {
	for i := range *q {
		if (*q)[i].key == key {
			(*q)[i].value = value
			return
		}
	}
	*q = append(*q, queryParam{key: key, value: value})
}

// Encode renders the parameters form-encoded, in insertion order.
func (q query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// escapeComponent percent-encodes s for use as a single query value,
// encoding spaces as %20 rather than '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
