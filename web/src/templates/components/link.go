package components

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SafeURL returns s for use in an href or src attribute. Card and user data
// come from the API unchecked, so anything with a scheme other than http,
// https, mailto, tel or ftp becomes templ's inert failure URL.
func SafeURL(s string) string {
	return string(templ.URL(strings.TrimSpace(s)))
}

// IsWebURL reports whether s is an absolute http or https URL.
func IsWebURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// WebLink links to an external site. Values that are not http or https
// URLs are shown as text.
func WebLink(s string) g.Node {
	if !IsWebURL(s) {
		return g.Text(s)
	}
	return h.A(h.Href(SafeURL(s)), h.Target("_blank"), g.Attr("rel", "noopener noreferrer"), g.Text(s))
}
