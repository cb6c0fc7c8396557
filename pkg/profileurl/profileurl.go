package profileurl

import (
	"net/url"
	"regexp"
	"strings"
)

// Service identifies which rules apply to a link field.
type Service struct {
	// Name is the label used in messages ("LinkedIn", "GitHub", "portfolio").
	Name string
	// Host is the canonical host of a profile service; empty for the generic
	// portfolio link.
	Host string
	// Prefix is the path segment preceding the handle, including its
	// trailing slash ("in/" for LinkedIn).
	Prefix string

	pattern *regexp.Regexp
}

var (
	// LinkedIn profiles: https://linkedin.com/in/<handle>.
	LinkedIn = newProfileService("LinkedIn", "linkedin.com", "in/")
	// GitHub profiles: https://github.com/<handle>.
	GitHub = newProfileService("GitHub", "github.com", "")
	// Portfolio accepts any well-formed absolute URL.
	Portfolio = Service{Name: "portfolio"}
)

var (
	schemePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)
	nonHandleChars = regexp.MustCompile(`[^A-Za-z0-9-]`)
)

func newProfileService(name, host, prefix string) Service {
	expr := `^https://(www\.)?` + regexp.QuoteMeta(host) + `/` + regexp.QuoteMeta(prefix) + `[A-Za-z0-9-]+/?$`
	return Service{
		Name:    name,
		Host:    host,
		Prefix:  prefix,
		pattern: regexp.MustCompile(expr),
	}
}

// Profile reports whether the service follows the host/prefix/handle shape.
func (s Service) Profile() bool {
	return s.Host != ""
}

// Canonical returns https://<host>/<prefix><handle>.
func (s Service) Canonical(handle string) string {
	return "https://" + s.Host + "/" + s.Prefix + handle
}

// IsValid reports whether value is acceptable for the service. Profile
// services require the canonical https shape with a handle made of letters,
// digits and hyphens; the portfolio link only has to be an absolute URL.
func IsValid(s Service, value string) bool {
	if !s.Profile() {
		return isAbsoluteURL(value)
	}
	return s.pattern.MatchString(value)
}

// Normalize rewrites raw input into canonical form. It is applied once when a
// field loses focus and is idempotent. Values that already carry a scheme are
// kept; "<host>/<prefix>..." gains https://; anything else is treated as a bare
// handle. Input mentioning the host without the profile prefix (a company
// page, say) is left alone, as is input with no handle characters at all.
func Normalize(s Service, raw string) string {
	if !s.Profile() {
		return raw
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return raw
	}
	if schemePattern.MatchString(value) {
		return value
	}

	lower := strings.ToLower(value)
	if strings.Contains(lower, s.Host+"/"+s.Prefix) {
		return "https://" + value
	}
	if strings.Contains(lower, s.Host) {
		return value
	}

	handle := nonHandleChars.ReplaceAllString(value, "")
	if handle == "" {
		return raw
	}
	return s.Canonical(handle)
}

var webSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
	"ws":    {},
	"wss":   {},
}

func isAbsoluteURL(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() {
		return false
	}
	if _, web := webSchemes[strings.ToLower(parsed.Scheme)]; web {
		return parsed.Host != ""
	}
	return parsed.Opaque != "" || parsed.Host != "" || parsed.Path != ""
}
