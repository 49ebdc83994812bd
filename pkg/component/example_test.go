package component_test

import (
	"fmt"

	"github.com/go-drift/component/pkg/component"
)

// Badge is a component with one writable property and one method.
type Badge struct {
	component.Base[component.Props]
	text  string
	shown int
}

var badgePrototype = component.NewPrototype("Badge", component.BasePrototype[*Badge]("Component")).
	Declare("text", component.Field(func(b *Badge) *string { return &b.text })).
	Declare("show", component.Descriptor[*Badge]{
		Method: func(b *Badge, args ...any) any {
			b.shown++
			return b.text
		},
	})

func (b *Badge) Prototype() *component.Prototype[*Badge] { return badgePrototype }

func (b *Badge) Element() component.Node { return "<badge>" + b.text + "</badge>" }

// This example shows how a component exposes its properties on a rendered
// target. Writes through the target land on the component.
func ExampleBindProperties() {
	badge := &Badge{Base: component.New(component.PropsOf(nil)), text: "new"}
	target := component.NewObject()

	if err := component.BindProperties(target, badge, "text", "show"); err != nil {
		fmt.Println(err)
		return
	}

	_ = target.Set("text", "updated")
	out, _ := target.Call("show")

	fmt.Println(out)
	fmt.Println(badge.shown)
	// Output:
	// updated
	// 1
}

// This example shows how a component absorbs external values, and how an
// undeclared key is refused.
func ExampleAssignProperties() {
	badge := &Badge{Base: component.New(component.PropsOf(nil))}

	values, _ := component.DecodeValues([]byte("text: hello\n"))
	if err := component.AssignProperties(badge, values, "text", "missing"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(badge.text)

	err := component.AssignProperties(badge, component.Values{"ghost": 1}, "ghost")
	fmt.Println(err)
	// Output:
	// hello
	// component.AssignProperties [property-not-assignable] key=ghost: property not assignable
}

// This example shows a component rendered through Render.
func ExampleRender() {
	badge := &Badge{
		Base: component.New(component.PropsOf(map[component.Key]any{"tone": "info"}), "child"),
		text: "3",
	}

	node, err := component.Render(badge)
	fmt.Println(node, err)
	fmt.Println(badge.Properties().Get("tone"), badge.Children().Len())
	// Output:
	// <badge>3</badge> <nil>
	// info 1
}
