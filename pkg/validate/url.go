package validate

import (
	"net/url"
	"strings"
)

// IsURL accepts absolute http(s) URLs with a host, the only form a
// target or placement link may take.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsAnchorText rejects empty and whitespace-only anchors.
func IsAnchorText(s string) bool {
	return strings.TrimSpace(s) != ""
}
