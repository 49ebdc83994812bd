package component

import (
	"fmt"
	"reflect"

	"github.com/go-drift/component/pkg/errors"
)

// Key names a property.
type Key string

// Descriptor declares a property of instances of T.
//
// A descriptor takes one of three shapes:
//   - a stored value: Value is set (possibly nil) and nothing else;
//   - a method: Method is set and is called with the instance;
//   - an accessor: Get, Set or both are set. A missing Get makes the property
//     write-only and a missing Set makes it read-only.
//
// Value or Method cannot be combined with Get or Set.
type Descriptor[T any] struct {
	Value  any
	Method func(self T, args ...any) any
	Get    func(self T) any
	Set    func(self T, value any) error
}

// IsAccessor reports whether d declares a getter or setter.
func (d Descriptor[T]) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// IsMethod reports whether d declares a method.
func (d Descriptor[T]) IsMethod() bool {
	return d.Method != nil
}

func (d Descriptor[T]) validate() error {
	if d.IsAccessor() && (d.Value != nil || d.Method != nil) {
		return fmt.Errorf("descriptor mixes accessor with value or method")
	}
	if d.Value != nil && d.Method != nil {
		return fmt.Errorf("descriptor sets both value and method")
	}
	return nil
}

// bind returns a copy of d whose functions are closed over self.
func (d Descriptor[T]) bind(self T) Property {
	p := Property{Value: d.Value}
	if method := d.Method; method != nil {
		p.Call = func(args ...any) any { return method(self, args...) }
	}
	if get := d.Get; get != nil {
		p.Get = func() any { return get(self) }
	}
	if set := d.Set; set != nil {
		p.Set = func(value any) error { return set(self, value) }
	}
	return p
}

// Prototype is one layer of an ownership chain: the properties declared by a
// component type, and the more general layer it extends.
//
// Build prototypes once, at package initialization, and treat them as
// read-only afterwards. Declare is not safe for concurrent use; lookups are.
type Prototype[T any] struct {
	name   string
	parent *Prototype[T]
	own    map[Key]Descriptor[T]
	keys   []Key
}

// NewPrototype returns an empty layer extending parent. A nil parent starts a
// new chain.
func NewPrototype[T any](name string, parent *Prototype[T]) *Prototype[T] {
	return &Prototype[T]{
		name:   name,
		parent: parent,
		own:    make(map[Key]Descriptor[T]),
	}
}

// Declare adds or replaces the declaration of key on this layer and returns
// the layer for chaining. It panics if d is malformed.
func (p *Prototype[T]) Declare(key Key, d Descriptor[T]) *Prototype[T] {
	if err := d.validate(); err != nil {
		panic(fmt.Sprintf("component: %s.%s: %v", p.name, key, err))
	}
	if _, exists := p.own[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.own[key] = d
	return p
}

// Name returns the layer name.
func (p *Prototype[T]) Name() string {
	return p.name
}

// Parent returns the layer this one extends, or nil.
func (p *Prototype[T]) Parent() *Prototype[T] {
	return p.parent
}

// OwnDescriptor returns the declaration of key on this layer only.
func (p *Prototype[T]) OwnDescriptor(key Key) (Descriptor[T], bool) {
	d, ok := p.own[key]
	return d, ok
}

// OwnKeys returns the keys declared on this layer, in declaration order.
func (p *Prototype[T]) OwnKeys() []Key {
	keys := make([]Key, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Has reports whether key is declared on this layer or any ancestor.
func (p *Prototype[T]) Has(key Key) bool {
	_, _, ok := Resolve(p, key)
	return ok
}

// Chain returns the layer names from p to the root.
func (p *Prototype[T]) Chain() []string {
	var names []string
	for layer := p; layer != nil; layer = layer.parent {
		names = append(names, layer.name)
	}
	return names
}

// Resolve finds the nearest declaration of key, starting at root and moving
// toward the root of the chain. It returns the descriptor and the layer that
// declares it. A nil root resolves nothing.
func Resolve[T any](root *Prototype[T], key Key) (Descriptor[T], *Prototype[T], bool) {
	for layer := root; layer != nil; layer = layer.parent {
		if d, ok := layer.own[key]; ok {
			return d, layer, true
		}
	}
	return Descriptor[T]{}, nil, false
}

// Prototyped is implemented by components that expose properties through a
// prototype chain. Prototype must return the same chain for every instance of
// a type.
type Prototyped[T any] interface {
	Prototype() *Prototype[T]
}

// Lift re-expresses the chain rooted at p, declared for S, as a chain for T.
// project selects the S inside a T, typically an embedded component:
//
//	var buttonPrototype = component.NewPrototype("Button",
//	    component.Lift(labelPrototype, func(b *Button) *Label { return &b.Label }))
//
// Layer names, declaration order and shadowing are preserved.
func Lift[S, T any](p *Prototype[S], project func(T) S) *Prototype[T] {
	if p == nil {
		return nil
	}
	lifted := NewPrototype[T](p.name, Lift[S, T](p.parent, project))
	for _, key := range p.keys {
		lifted.Declare(key, liftDescriptor(p.own[key], project))
	}
	return lifted
}

func liftDescriptor[S, T any](d Descriptor[S], project func(T) S) Descriptor[T] {
	out := Descriptor[T]{Value: d.Value}
	if method := d.Method; method != nil {
		out.Method = func(self T, args ...any) any { return method(project(self), args...) }
	}
	if get := d.Get; get != nil {
		out.Get = func(self T) any { return get(project(self)) }
	}
	if set := d.Set; set != nil {
		out.Set = func(self T, value any) error { return set(project(self), value) }
	}
	return out
}

// Field returns a read/write accessor over the field selected by field.
// The setter rejects values that are not a V with errors.ErrPropertyType;
// nil is accepted when V is a pointer, interface, map, slice, func or chan.
func Field[T, V any](field func(self T) *V) Descriptor[T] {
	return Descriptor[T]{
		Get: func(self T) any { return *field(self) },
		Set: func(self T, value any) error {
			v, ok := value.(V)
			if !ok && (value != nil || !nillable[V]()) {
				return fmt.Errorf("%w: want %s, got %T", errors.ErrPropertyType, reflect.TypeFor[V](), value)
			}
			*field(self) = v
			return nil
		},
	}
}

// Getter returns a read-only accessor.
func Getter[T, V any](get func(self T) V) Descriptor[T] {
	return Descriptor[T]{
		Get: func(self T) any { return get(self) },
	}
}

func nillable[V any]() bool {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// BasePrototype returns a new root layer declaring the properties every
// component has: "element", which renders through Element, and "children".
// Both are read-only.
func BasePrototype[T Component](name string) *Prototype[T] {
	return NewPrototype[T](name, nil).
		Declare("element", Getter(func(self T) Node { return self.Element() })).
		Declare("children", Getter(func(self T) Children { return self.Children() }))
}
