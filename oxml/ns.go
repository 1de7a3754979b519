package oxml

import (
	"sort"
	"strings"
)

// Namespace URIs for the prefixes used throughout chartkit.
const (
	NsDrawingML     = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NsChart         = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	NsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

var nsmap = map[string]string{
	"a": NsDrawingML,
	"c": NsChart,
	"p": NsPresentation,
	"r": NsRelationships,
}

var prefixByURI = func() map[string]string {
	m := make(map[string]string, len(nsmap))
	for pfx, uri := range nsmap {
		m[uri] = pfx
	}
	return m
}()

// NsURI returns the namespace URI bound to prefix, or "" for an unknown prefix.
func NsURI(prefix string) string {
	return nsmap[prefix]
}

// Prefix returns the canonical prefix for a namespace URI.
func Prefix(uri string) (string, bool) {
	pfx, ok := prefixByURI[uri]
	return pfx, ok
}

// Qn converts a prefixed tag such as "c:catAx" to Clark notation
// ("{http://...chart}catAx"). Tags without a known prefix are returned unchanged.
func Qn(tag string) string {
	pfx, local, ok := strings.Cut(tag, ":")
	if !ok {
		return tag
	}
	uri, known := nsmap[pfx]
	if !known {
		return tag
	}
	return "{" + uri + "}" + local
}

// NsDecls renders xmlns declarations for the given prefixes, sorted by prefix.
func NsDecls(prefixes ...string) string {
	sorted := append([]string(nil), prefixes...)
	sort.Strings(sorted)
	var b strings.Builder
	for i, pfx := range sorted {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(`xmlns:` + pfx + `="` + nsmap[pfx] + `"`)
	}
	return b.String()
}
