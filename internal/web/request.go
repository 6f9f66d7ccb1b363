package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ParsedRequest is the part of an inbound request the router looks at.
// Headers and body are ignored.
type ParsedRequest struct {
	Method string
	Path   string
	Query  map[string]string
}

// ParseRequest derives a ParsedRequest once per request.
func ParseRequest(r *http.Request) ParsedRequest {
	return ParsedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  ParseQuery(r.URL.RawQuery),
	}
}

// ParseQuery splits a raw query string on '&' and each pair on its first
// '='. Pairs without '=' or with an empty key are dropped. Keys and values
// are percent-decoded when they decode cleanly and kept verbatim otherwise.
// The first occurrence of a key wins.
func ParseQuery(raw string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key = unescape(key)
		if key == "" {
			continue
		}
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = unescape(value)
	}
	return params
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// parseInt parses a whole token as a base-10 integer.
func parseInt(token string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseSizeList parses comma-separated integers, dropping invalid tokens.
func parseSizeList(csv string) []int {
	sizes := []int{}
	for _, token := range strings.Split(csv, ",") {
		if n, ok := parseInt(token); ok {
			sizes = append(sizes, n)
		}
	}
	return sizes
}
