// Package network resolves stylesheet locations discovered in a
// document tree. Fetching is left to the external networking
// collaborator; this package only does the string work of relative
// resolution and link discovery.
package network

import (
	"strings"

	"github.com/parchment-engine/parchment/html"
)

// Resolve resolves a reference against a base location using the
// three-case relative rule: an absolute reference is returned
// unchanged; a host-relative reference (leading '/') reuses the
// base's scheme and host; anything else is appended to the base
// truncated at its last '/'.
func Resolve(base, ref string) string {
	if ref == "" {
		return base
	}
	if strings.Contains(ref, "://") {
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		return schemeHost(base) + ref
	}
	if i := strings.LastIndex(afterScheme(base), "/"); i >= 0 {
		return base[:len(base)-len(afterScheme(base))+i+1] + ref
	}
	// The base has no path; treat the reference as host-relative.
	return base + "/" + ref
}

// schemeHost returns the scheme://host prefix of a location, or the
// whole location when no path follows the host.
func schemeHost(base string) string {
	rest := afterScheme(base)
	if i := strings.Index(rest, "/"); i >= 0 {
		return base[:len(base)-len(rest)+i]
	}
	return base
}

// afterScheme returns the location with any scheme:// prefix removed.
func afterScheme(base string) string {
	if i := strings.Index(base, "://"); i >= 0 {
		return base[i+3:]
	}
	return base
}

// StylesheetLinks scans a built tree for link elements pointing at
// style resources and returns their hrefs in document order. The
// caller resolves each against the document location and fetches it.
func StylesheetLinks(root *html.Node) []string {
	var hrefs []string
	root.Walk(func(n *html.Node) {
		if n.Type != html.ElementNode || n.Tag != "link" {
			return
		}
		if !strings.Contains(n.GetAttribute("rel"), "stylesheet") {
			return
		}
		if href := n.GetAttribute("href"); href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}
