package component

import (
	"github.com/go-drift/component/pkg/errors"
)

// Source supplies external values for AssignProperties.
type Source interface {
	// Lookup returns the value for key and whether the source has one.
	Lookup(key Key) (any, bool)
}

// Values is a map-backed Source.
type Values map[Key]any

// Lookup returns the value stored under key.
func (v Values) Lookup(key Key) (any, bool) {
	value, ok := v[key]
	return value, ok
}

// AssignProperties copies the values named by keys from source onto self.
//
// Keys absent from source are skipped. A key present in source must already
// be declared on self's prototype chain, and its declaration must have a
// setter; otherwise the call aborts with an error of kind
// KindPropertyNotAssignable. Setter failures, such as errors.ErrPropertyType,
// abort the same way and are wrapped in the returned error.
//
// Keys are processed in order and values assigned before a failing key stay
// assigned. No new property is ever introduced on self.
func AssignProperties[T Prototyped[T]](self T, source Source, keys ...Key) error {
	root := self.Prototype()
	for _, key := range keys {
		value, ok := source.Lookup(key)
		if !ok {
			continue
		}
		d, _, found := Resolve(root, key)
		if !found {
			return errors.PropertyNotAssignable("component.AssignProperties", string(key), nil)
		}
		if d.Set == nil {
			return errors.PropertyNotAssignable("component.AssignProperties", string(key), errors.ErrReadOnly)
		}
		if err := d.Set(self, value); err != nil {
			return errors.PropertyNotAssignable("component.AssignProperties", string(key), err)
		}
	}
	return nil
}
