package oxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// NewElement creates a detached element for a prefixed tag such as "c:delete".
// No namespace declaration is added; the element relies on its eventual
// ancestors (or on XML/Bytes) for the prefix binding.
func NewElement(tag string) *etree.Element {
	return etree.NewElement(tag)
}

// FirstChild returns the first child element of parent whose prefixed tag is
// one of tags, or nil.
func FirstChild(parent *etree.Element, tags ...string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.ChildElements() {
		if matches(child, tags) {
			return child
		}
	}
	return nil
}

// Children returns every child element of parent matching one of tags, in
// document order.
func Children(parent *etree.Element, tags ...string) []*etree.Element {
	if parent == nil {
		return nil
	}
	var out []*etree.Element
	for _, child := range parent.ChildElements() {
		if matches(child, tags) {
			out = append(out, child)
		}
	}
	return out
}

// InsertInOrder inserts child into parent ahead of the first existing child
// element that follows it in the schema sequence order. Children whose tag
// is not in order, or that have no successor present, are appended.
func InsertInOrder(parent, child *etree.Element, order []string) *etree.Element {
	if pos := indexOf(order, child.FullTag()); pos >= 0 {
		successors := order[pos+1:]
		for _, sibling := range parent.ChildElements() {
			if indexOf(successors, sibling.FullTag()) >= 0 {
				parent.InsertChildAt(sibling.Index(), child)
				return child
			}
		}
	}
	parent.AddChild(child)
	return child
}

// GetOrAdd returns the first child of parent with tag, inserting a new empty
// one in schema order when there is none.
func GetOrAdd(parent *etree.Element, tag string, order []string) *etree.Element {
	if child := FirstChild(parent, tag); child != nil {
		return child
	}
	return InsertInOrder(parent, NewElement(tag), order)
}

// RemoveAll removes every child element of parent matching one of tags and
// reports how many were removed.
func RemoveAll(parent *etree.Element, tags ...string) int {
	removed := 0
	for _, child := range Children(parent, tags...) {
		parent.RemoveChild(child)
		removed++
	}
	return removed
}

// ChangeChoice resolves a discriminated child choice to target. An existing
// target child is returned untouched; otherwise every child in choices is
// removed and a new empty target is inserted in schema order.
func ChangeChoice(parent *etree.Element, target string, choices, order []string) *etree.Element {
	if child := FirstChild(parent, target); child != nil {
		return child
	}
	RemoveAll(parent, choices...)
	return InsertInOrder(parent, NewElement(target), order)
}

// AttrString returns the value of the named attribute, or dflt when absent.
func AttrString(el *etree.Element, name, dflt string) string {
	if el == nil {
		return dflt
	}
	return el.SelectAttrValue(name, dflt)
}

// HasAttr reports whether el carries the named attribute.
func HasAttr(el *etree.Element, name string) bool {
	return el != nil && el.SelectAttr(name) != nil
}

// AttrBool reads an xsd:boolean attribute. Absent or unparseable values yield
// dflt.
func AttrBool(el *etree.Element, name string, dflt bool) bool {
	if el == nil {
		return dflt
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return dflt
	}
	if b, ok := ParseXsdBool(attr.Value); ok {
		return b
	}
	return dflt
}

// AttrFloat reads an xsd:double attribute. The second result is false when
// the attribute is absent or not a number.
func AttrFloat(el *etree.Element, name string) (float64, bool) {
	if el == nil {
		return 0, false
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AttrInt reads an integer attribute, returning dflt when absent or invalid.
func AttrInt(el *etree.Element, name string, dflt int) int {
	if el == nil {
		return dflt
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return dflt
	}
	v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return dflt
	}
	return v
}

// SetAttr sets (or replaces) the named attribute in place.
func SetAttr(el *etree.Element, name, value string) {
	el.CreateAttr(name, value)
}

// SetFloatAttr writes v using the shortest decimal representation.
func SetFloatAttr(el *etree.Element, name string, v float64) {
	el.CreateAttr(name, FormatFloat(v))
}

// RemoveAttr removes the named attribute if present.
func RemoveAttr(el *etree.Element, name string) {
	el.RemoveAttr(name)
}

// ParseXsdBool parses the xsd:boolean lexical space.
func ParseXsdBool(s string) (value, ok bool) {
	switch strings.TrimSpace(s) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// FormatXsdBool renders b the way Office writes booleans ("1"/"0").
func FormatXsdBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatFloat renders v as the shortest decimal that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func matches(el *etree.Element, tags []string) bool {
	return indexOf(tags, el.FullTag()) >= 0
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
