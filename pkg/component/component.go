package component

import (
	"reflect"

	"github.com/go-drift/component/pkg/errors"
)

// Node is an entry in a component tree: another component, a primitive value,
// or a marker understood by the renderer. The core never inspects it.
type Node = any

// Renderer produces the rendered representation of a component.
type Renderer interface {
	Element() Node
}

// Component is satisfied by any struct that embeds Base.
type Component interface {
	Renderer
	Children() Children
}

// Base carries the immutable properties and children of a component.
// Embed it in a concrete component and shadow Element:
//
//	type Badge struct {
//	    component.Base[BadgeProps]
//	}
//
//	func (b *Badge) Element() component.Node { ... }
//
// The zero value is a component with zero-value properties and no children.
type Base[P any] struct {
	properties P
	children   Children
}

// New returns a Base holding properties and a private copy of children.
// Later writes to a slice spread into children are not observed.
func New[P any](properties P, children ...Node) Base[P] {
	return Base[P]{
		properties: properties,
		children:   NewChildren(children...),
	}
}

// Properties returns the properties supplied at construction.
func (b *Base[P]) Properties() P {
	return b.properties
}

// Children returns the read-only child list supplied at construction.
func (b *Base[P]) Children() Children {
	return b.children
}

// Element panics with an error of kind KindNotImplemented.
// Concrete components must provide their own Element.
func (b *Base[P]) Element() Node {
	panic(errors.NotImplemented("component.Base.Element", ""))
}

// Render calls c.Element and converts a panic into an error.
//
// The error is reported to the global handler before it is returned. A
// missing Element surfaces as *errors.ComponentError naming the component's
// type; any other panic surfaces as *errors.PanicError.
func Render(c Renderer) (node Node, err error) {
	var name string
	if t := reflect.TypeOf(c); t != nil {
		name = t.String()
	}
	defer errors.RecoverWithCallback("component.Render", name, func(recovered error) {
		node, err = nil, recovered
	})
	return c.Element(), nil
}
