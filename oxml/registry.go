package oxml

import (
	"sync"

	"github.com/beevik/etree"
)

// Node is implemented by every typed accessor bound to a single element.
type Node interface {
	Element() *etree.Element
}

// Constructor builds the typed accessor for an element.
type Constructor func(*etree.Element) Node

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register binds a prefixed tag to the constructor Wrap uses for it.
// Registering the same tag twice replaces the earlier constructor.
func Register(tag string, fn Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tag] = fn
}

// Wrap returns the typed accessor registered for el's tag, or a *Generic
// for unregistered tags. A nil element wraps to nil.
func Wrap(el *etree.Element) Node {
	if el == nil {
		return nil
	}
	registryMu.RLock()
	fn, ok := registry[el.FullTag()]
	registryMu.RUnlock()
	if !ok {
		return &Generic{el: el}
	}
	return fn(el)
}

// Generic is the accessor for elements without a registered type.
type Generic struct {
	el *etree.Element
}

func (g *Generic) Element() *etree.Element { return g.el }
