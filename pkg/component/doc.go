// Package component provides the base type for renderable components in a
// declarative tree, and the machinery that exposes their properties to a
// rendered target.
//
// A component carries an immutable set of properties and an immutable list of
// children, both fixed when it is constructed. It renders through Element,
// which concrete components provide by shadowing the method promoted from
// Base:
//
//	type Label struct {
//	    component.Base[component.Props]
//	    text string
//	}
//
//	func (l *Label) Element() component.Node { return l.text }
//
// # Prototype Chains
//
// The properties a component exposes at runtime are declared on a Prototype:
// an ordered layer of descriptors with an optional parent layer. Lookups walk
// from a layer toward its ancestors and stop at the nearest declaration, so a
// layer shadows anything its ancestors declare under the same key. Chains are
// built once, when the component type is registered, and are read-only
// afterwards:
//
//	var labelPrototype = component.NewPrototype("Label", component.BasePrototype[*Label]("Component")).
//	    Declare("label", component.Field(func(l *Label) *string { return &l.text }))
//
//	func (l *Label) Prototype() *component.Prototype[*Label] { return labelPrototype }
//
// A descriptor is either a stored value, a method, or an accessor pair. Method
// and accessor functions receive the instance explicitly; nothing is bound to
// an implicit receiver.
//
// # Fan-out and Fan-in
//
// BindProperties copies resolved descriptors onto a Target, closing each
// method and accessor over the instance so the target reads and writes through
// to it. AssignProperties copies values from a Source onto properties the
// instance already declares, and refuses everything else.
//
// Both operations fail fast: the first key that cannot be bound or assigned
// aborts the call, and whatever was applied before it stays applied.
//
// # Concurrency
//
// Properties, children and prototype chains are safe to share between
// goroutines once constructed. Targets and component state written through
// setters are owned by the caller and are not synchronized.
package component
