// Package cxml builds element trees from compact XML expressions, a terse
// notation for fixtures:
//
//	c:catAx/c:scaling/c:max{val=12.34}
//	a:solidFill/(a:schemeClr{val=bg1},a:lumMod{val=75000})
//	c:tx/c:rich/a:p/a:r/a:t"Sales"
//
// A tag may be followed by attributes in braces, a quoted text value, and
// either one child after "/" or a parenthesized, comma separated list of
// children. The root element declares every namespace prefix used below it.
package cxml

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Expr   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cxml: %s at offset %d in %q", e.Msg, e.Offset, e.Expr)
}

// Element builds the tree described by expr.
func Element(expr string) (*etree.Element, error) {
	p := &parser{src: expr, prefixes: map[string]bool{}}
	el, err := p.element()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	prefixes := make([]string, 0, len(p.prefixes))
	for pfx := range p.prefixes {
		if oxml.NsURI(pfx) == "" {
			return nil, &SyntaxError{Expr: expr, Msg: fmt.Sprintf("unknown namespace prefix %q", pfx)}
		}
		prefixes = append(prefixes, pfx)
	}
	sort.Strings(prefixes)
	oxml.Declare(el, prefixes...)
	return el, nil
}

// MustElement is like Element but panics on a malformed expression.
func MustElement(expr string) *etree.Element {
	el, err := Element(expr)
	if err != nil {
		panic(err)
	}
	return el
}

// XML returns the canonical serialization (see oxml.XML) of expr's tree.
func XML(expr string) string {
	return oxml.XML(MustElement(expr))
}

type parser struct {
	src      string
	pos      int
	prefixes map[string]bool
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Expr: p.src, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		if p.pos >= len(p.src) {
			return p.errorf("expected %q, got end of input", c)
		}
		return p.errorf("expected %q, got %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) element() (*etree.Element, error) {
	tag := p.name()
	if tag == "" {
		return nil, p.errorf("expected tag name")
	}
	p.usePrefix(tag)
	el := oxml.NewElement(tag)

	if p.peek() == '{' {
		if err := p.attrs(el); err != nil {
			return nil, err
		}
	}
	if p.peek() == '"' {
		text, err := p.quoted()
		if err != nil {
			return nil, err
		}
		el.SetText(text)
	}
	if p.peek() != '/' {
		return el, nil
	}
	p.pos++
	if p.peek() != '(' {
		child, err := p.element()
		if err != nil {
			return nil, err
		}
		el.AddChild(child)
		return el, nil
	}
	p.pos++
	for {
		child, err := p.element()
		if err != nil {
			return nil, err
		}
		el.AddChild(child)
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return el, nil
		default:
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}

func (p *parser) attrs(el *etree.Element) error {
	p.pos++ // {
	for {
		key := p.name()
		if key == "" {
			return p.errorf("expected attribute name")
		}
		if strings.Contains(key, ":") {
			p.usePrefix(key)
		}
		if err := p.expect('='); err != nil {
			return err
		}
		var value string
		if p.peek() == '"' {
			v, err := p.quoted()
			if err != nil {
				return err
			}
			value = v
		} else {
			start := p.pos
			for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != '}' {
				p.pos++
			}
			value = p.src[start:p.pos]
		}
		el.CreateAttr(key, value)
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return nil
		default:
			return p.errorf("expected ',' or '}'")
		}
	}
}

func (p *parser) quoted() (string, error) {
	p.pos++ // opening quote
	end := strings.IndexByte(p.src[p.pos:], '"')
	if end < 0 {
		return "", p.errorf("unterminated string")
	}
	s := p.src[p.pos : p.pos+end]
	p.pos += end + 1
	return s, nil
}

func (p *parser) name() string {
	start := p.pos
	for p.pos < len(p.src) && isNameChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) usePrefix(name string) {
	if pfx, _, ok := strings.Cut(name, ":"); ok {
		p.prefixes[pfx] = true
	}
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == ':' || c == '_' || c == '-' || c == '.'
}
