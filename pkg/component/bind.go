package component

import (
	"github.com/go-drift/component/pkg/errors"
)

// Property is a descriptor bound to one instance, ready to install on a
// Target. Call, Get and Set close over the instance they were bound to.
type Property struct {
	Value any
	Call  func(args ...any) any
	Get   func() any
	Set   func(value any) error
}

// IsAccessor reports whether p has a getter or setter.
func (p Property) IsAccessor() bool {
	return p.Get != nil || p.Set != nil
}

// Target receives bound properties, typically the rendered representation of
// a component.
type Target interface {
	DefineProperty(key Key, p Property)
}

// BindProperties installs the properties named by keys from self onto target.
//
// Each key is resolved along self's prototype chain. Methods and accessors are
// bound to self, so calling or reading them through target behaves exactly as
// it would on self; stored values are copied. An existing property on target
// is replaced.
//
// Keys are processed in order. The first key that resolves nowhere aborts the
// call with an error of kind KindPropertyNotFound; keys installed before it
// remain on target. self is never modified.
func BindProperties[T Prototyped[T]](target Target, self T, keys ...Key) error {
	root := self.Prototype()
	for _, key := range keys {
		d, _, ok := Resolve(root, key)
		if !ok {
			return errors.PropertyNotFound("component.BindProperties", string(key))
		}
		target.DefineProperty(key, d.bind(self))
	}
	return nil
}

// Object is a plain, ordered property container. It is the simplest Target
// and also serves as a Source. Object is not safe for concurrent use.
type Object struct {
	props map[Key]Property
	keys  []Key
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{props: make(map[Key]Property)}
}

// DefineProperty installs p under key, replacing any existing property.
func (o *Object) DefineProperty(key Key, p Property) {
	if _, exists := o.props[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.props[key] = p
}

// Property returns the property installed under key.
func (o *Object) Property(key Key) (Property, bool) {
	p, ok := o.props[key]
	return p, ok
}

// Get reads key. Accessors run their getter, or yield nil when write-only.
// Methods yield their bound function.
func (o *Object) Get(key Key) (any, bool) {
	p, ok := o.props[key]
	if !ok {
		return nil, false
	}
	switch {
	case p.IsAccessor():
		if p.Get == nil {
			return nil, true
		}
		return p.Get(), true
	case p.Call != nil:
		return p.Call, true
	default:
		return p.Value, true
	}
}

// Lookup is Get; it lets an Object act as a Source.
func (o *Object) Lookup(key Key) (any, bool) {
	return o.Get(key)
}

// Set writes value to key. Accessors run their setter and fail with
// KindPropertyNotAssignable when read-only. Any other property, or a missing
// one, becomes a stored value.
func (o *Object) Set(key Key, value any) error {
	p, ok := o.props[key]
	if ok && p.IsAccessor() {
		if p.Set == nil {
			return errors.PropertyNotAssignable("component.Object.Set", string(key), errors.ErrReadOnly)
		}
		if err := p.Set(value); err != nil {
			return errors.PropertyNotAssignable("component.Object.Set", string(key), err)
		}
		return nil
	}
	o.DefineProperty(key, Property{Value: value})
	return nil
}

// Call invokes the function stored under key with args.
// A method is called directly; a stored or computed value is called when it
// is a func(...any) any.
func (o *Object) Call(key Key, args ...any) (any, error) {
	p, ok := o.props[key]
	if !ok {
		return nil, errors.PropertyNotFound("component.Object.Call", string(key))
	}
	if p.Call != nil {
		return p.Call(args...), nil
	}
	v, _ := o.Get(key)
	if fn, ok := v.(func(...any) any); ok {
		return fn(args...), nil
	}
	return nil, errors.NotCallable("component.Object.Call", string(key))
}

// Keys returns the installed keys in first-definition order.
func (o *Object) Keys() []Key {
	keys := make([]Key, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of installed properties.
func (o *Object) Len() int {
	return len(o.keys)
}
