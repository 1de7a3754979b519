package oxml

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/wudi/chartkit/observability"
)

// ParseConfig controls how parts are read into element trees.
type ParseConfig struct {
	Logger observability.Logger
	// CharsetReader decodes non UTF-8 input. Defaults to charset.NewReaderLabel,
	// which understands every WHATWG encoding label.
	CharsetReader func(label string, input io.Reader) (io.Reader, error)
	// KeepPrefixes disables rewriting of known namespaces to the canonical
	// a/c/p/r prefixes.
	KeepPrefixes bool
}

func (cfg ParseConfig) withDefaults() ParseConfig {
	cfg.Logger = observability.OrNop(cfg.Logger)
	if cfg.CharsetReader == nil {
		cfg.CharsetReader = charset.NewReaderLabel
	}
	return cfg
}

// Parse reads an XML part and returns its root element.
func Parse(data []byte, cfg ParseConfig) (*etree.Element, error) {
	return ParseReader(bytes.NewReader(data), cfg)
}

// ParseReader reads an XML part from r and returns its root element. Known
// namespaces are rebound to their canonical prefixes so accessors can match
// tags such as "c:valAx" regardless of the prefixes the producer chose.
func ParseReader(r io.Reader, cfg ParseConfig) (*etree.Element, error) {
	cfg = cfg.withDefaults()
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = cfg.CharsetReader
	n, err := doc.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	if !cfg.KeepPrefixes {
		renamed := normalizePrefixes(root)
		redeclare(root)
		if renamed > 0 {
			cfg.Logger.Debug("rebound namespace prefixes", observability.Int("elements", renamed))
		}
	}
	cfg.Logger.Debug("parsed part",
		observability.String("root", root.FullTag()),
		observability.Int("bytes", int(n)),
	)
	return root, nil
}

// XML returns the canonical serialization of the subtree rooted at el: every
// namespace declaration is dropped and re-declared on the root for exactly the
// prefixes in use, sorted by prefix, with no indentation.
func XML(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(canonicalCopy(el))
	s, err := doc.WriteToString()
	if err != nil {
		// strings.Builder writes do not fail
		panic(err)
	}
	return s
}

// Bytes serializes el as a standalone part with an XML declaration. A positive
// indent pretty-prints with that many spaces.
func Bytes(el *etree.Element, indent int) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	doc.SetRoot(canonicalCopy(el))
	if indent > 0 {
		doc.Indent(indent)
	}
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize xml: %w", err)
	}
	return b, nil
}

func canonicalCopy(el *etree.Element) *etree.Element {
	cp := el.Copy()
	decls := make(map[string]string)
	for _, pfx := range usedPrefixes(cp) {
		uri := NsURI(pfx)
		if uri == "" {
			uri = lookupNamespace(el, pfx)
		}
		if uri != "" {
			decls[pfx] = uri
		}
	}
	walk(cp, stripNsDecls)
	prependDecls(cp, decls)
	return cp
}

// normalizePrefixes rewrites element and attribute prefixes bound to a known
// namespace URI to the canonical prefix and reports how many were changed.
func normalizePrefixes(root *etree.Element) int {
	renamed := 0
	var visit func(el *etree.Element, inherited map[string]string)
	visit = func(el *etree.Element, inherited map[string]string) {
		scope, copied := inherited, false
		for _, a := range el.Attr {
			pfx, ok := declaredPrefix(a)
			if !ok {
				continue
			}
			if !copied {
				scope, copied = copyMap(inherited), true
			}
			scope[pfx] = a.Value
		}
		if uri, ok := scope[el.Space]; ok {
			if pfx, known := Prefix(uri); known && pfx != el.Space {
				el.Space = pfx
				renamed++
			}
		}
		for i := range el.Attr {
			a := &el.Attr[i]
			if a.Space == "" || a.Space == "xmlns" || a.Space == "xml" {
				continue
			}
			if pfx, known := Prefix(scope[a.Space]); known {
				a.Space = pfx
			}
		}
		for _, child := range el.ChildElements() {
			visit(child, scope)
		}
	}
	visit(root, map[string]string{})
	return renamed
}

// redeclare drops declarations of known namespaces anywhere in the tree and
// declares the canonical prefixes in use on root.
func redeclare(root *etree.Element) {
	walk(root, func(el *etree.Element) {
		kept := el.Attr[:0]
		for _, a := range el.Attr {
			if _, ok := declaredPrefix(a); ok {
				if _, known := Prefix(a.Value); known {
					continue
				}
			}
			kept = append(kept, a)
		}
		el.Attr = kept
	})
	Declare(root, usedPrefixes(root)...)
}

func declaredPrefix(a etree.Attr) (string, bool) {
	switch {
	case a.Space == "xmlns":
		return a.Key, true
	case a.Space == "" && a.Key == "xmlns":
		return "", true
	}
	return "", false
}

func stripNsDecls(el *etree.Element) {
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if _, ok := declaredPrefix(a); !ok {
			kept = append(kept, a)
		}
	}
	el.Attr = kept
}

func prependDecls(el *etree.Element, decls map[string]string) {
	if len(decls) == 0 {
		return
	}
	prefixes := make([]string, 0, len(decls))
	for pfx := range decls {
		prefixes = append(prefixes, pfx)
	}
	sort.Strings(prefixes)

	for _, pfx := range prefixes {
		if pfx == "" {
			el.RemoveAttr("xmlns")
		} else {
			el.RemoveAttr("xmlns:" + pfx)
		}
	}
	before := len(el.Attr)
	for _, pfx := range prefixes {
		if pfx == "" {
			el.CreateAttr("xmlns", decls[pfx])
			continue
		}
		el.CreateAttr("xmlns:"+pfx, decls[pfx])
	}
	added := append([]etree.Attr(nil), el.Attr[before:]...)
	el.Attr = append(added, el.Attr[:before]...)
}

func usedPrefixes(root *etree.Element) []string {
	seen := make(map[string]bool)
	walk(root, func(el *etree.Element) {
		seen[el.Space] = true
		for _, a := range el.Attr {
			if _, decl := declaredPrefix(a); decl || a.Space == "" || a.Space == "xml" {
				continue
			}
			seen[a.Space] = true
		}
	})
	out := make([]string, 0, len(seen))
	for pfx := range seen {
		out = append(out, pfx)
	}
	sort.Strings(out)
	return out
}

// lookupNamespace resolves prefix against the declarations in scope at el.
func lookupNamespace(el *etree.Element, prefix string) string {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if pfx, ok := declaredPrefix(a); ok && pfx == prefix {
				return a.Value
			}
		}
	}
	return ""
}

func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walk(child, fn)
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Declare adds xmlns declarations for the given known prefixes to the front
// of el's attribute list, replacing existing declarations of those prefixes.
func Declare(el *etree.Element, prefixes ...string) {
	decls := make(map[string]string, len(prefixes))
	for _, pfx := range prefixes {
		if uri := NsURI(pfx); uri != "" {
			decls[pfx] = uri
		}
	}
	prependDecls(el, decls)
}
