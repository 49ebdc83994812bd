package component

import (
	"maps"
	"slices"
)

// Props is an immutable property bag for components configured by key.
//
// PropsOf and With copy their input, so a Props never aliases a map that
// anyone else can write. Nested values are shared, not copied.
type Props struct {
	values map[Key]any
}

// PropsOf returns a Props holding a copy of values.
func PropsOf(values map[Key]any) Props {
	if len(values) == 0 {
		return Props{}
	}
	return Props{values: maps.Clone(values)}
}

// With returns a copy of p with key set to value.
func (p Props) With(key Key, value any) Props {
	values := make(map[Key]any, len(p.values)+1)
	maps.Copy(values, p.values)
	values[key] = value
	return Props{values: values}
}

// Get returns the value stored under key, or nil.
func (p Props) Get(key Key) any {
	return p.values[key]
}

// Lookup returns the value stored under key and whether it is present.
// Props satisfies Source, so one component's properties can be assigned
// onto another.
func (p Props) Lookup(key Key) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of properties.
func (p Props) Len() int {
	return len(p.values)
}

// Keys returns the property keys in sorted order.
func (p Props) Keys() []Key {
	return slices.Sorted(maps.Keys(p.values))
}

// Values returns a copy of the properties as a Values map.
func (p Props) Values() Values {
	values := make(Values, len(p.values))
	maps.Copy(values, p.values)
	return values
}
