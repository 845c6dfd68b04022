package common

import (
	"net/url"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// Page is a resolved offset window.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageFromQuery reads page and pageSize with parse-or-default semantics:
// unparsable or non-positive values fall back to the defaults, never to an
// error, and pageSize is clamped to MaxPageSize.
func PageFromQuery(q url.Values) Page {
	page := parseLeadingInt(q.Get("page"))
	if page <= 0 {
		page = DefaultPage
	}

	size := parseLeadingInt(q.Get("pageSize"))
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{Number: page, Size: size}
}

// parseLeadingInt parses an optional sign followed by the leading decimal
// digits of s ("12abc" is 12). It returns 0 when there are no digits.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			n = 1 << 30
			break
		}
	}
	if neg {
		return -n
	}
	return n
}
