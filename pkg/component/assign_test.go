package component

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/component/pkg/errors"
)

func TestAssignProperties_DeclaredKey(t *testing.T) {
	l := newTestLabel("")
	if err := AssignProperties(l, Values{"color": "red"}, "color"); err != nil {
		t.Fatalf("AssignProperties: %v", err)
	}
	if l.color != "red" {
		t.Errorf("color = %q, want red", l.color)
	}
}

func TestAssignProperties_InheritedAccessor(t *testing.T) {
	l := newTestLabel("x")
	if err := AssignProperties(l, Values{"label": "y"}, "label"); err != nil {
		t.Fatal(err)
	}
	if l.label != "y" {
		t.Errorf("label = %q, want y", l.label)
	}
}

func TestAssignProperties_AbsentSourceKeySkipped(t *testing.T) {
	l := newTestLabel("x")
	l.color = "blue"
	if err := AssignProperties(l, Values{}, "color", "ghost"); err != nil {
		t.Fatalf("absent keys should be skipped, got %v", err)
	}
	if l.color != "blue" {
		t.Errorf("color = %q, want unchanged", l.color)
	}
}

func TestAssignProperties_UndeclaredKey(t *testing.T) {
	l := newTestLabel("")
	err := AssignProperties(l, Values{"ghost": 1}, "ghost")

	var ce *errors.ComponentError
	if !stderrors.As(err, &ce) {
		t.Fatalf("err = %v, want *errors.ComponentError", err)
	}
	if ce.Kind != errors.KindPropertyNotAssignable || ce.Key != "ghost" {
		t.Errorf("err = %+v", ce)
	}
	if stderrors.Is(err, errors.ErrReadOnly) {
		t.Error("undeclared key should not be reported as read-only")
	}
}

func TestAssignProperties_FailureKeepsEarlierWrites(t *testing.T) {
	l := newTestLabel("x")
	source := Values{"color": "red", "ghost": 1, "label": "late"}
	err := AssignProperties(l, source, "color", "ghost", "label")

	if !stderrors.Is(err, errors.ErrPropertyNotAssignable) {
		t.Fatalf("err = %v, want ErrPropertyNotAssignable", err)
	}
	if l.color != "red" {
		t.Errorf("color = %q, want red from before the failure", l.color)
	}
	if l.label != "x" {
		t.Errorf("label = %q, keys after the failure should not be assigned", l.label)
	}
}

func TestAssignProperties_ReadOnly(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{"getter only", "clicks"},
		{"stored value", "kind"},
		{"method", "click"},
		{"inherited getter", "element"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLabel("x")
			err := AssignProperties(l, Values{tt.key: 1}, tt.key)
			if !stderrors.Is(err, errors.ErrPropertyNotAssignable) || !stderrors.Is(err, errors.ErrReadOnly) {
				t.Errorf("err = %v, want read-only not-assignable error", err)
			}
			if l.clicks != 0 {
				t.Errorf("clicks = %d, method should not run", l.clicks)
			}
		})
	}
}

func TestAssignProperties_TypeMismatch(t *testing.T) {
	l := newTestLabel("x")
	err := AssignProperties(l, Values{"color": 5}, "color")
	if !stderrors.Is(err, errors.ErrPropertyType) {
		t.Errorf("err = %v, want ErrPropertyType", err)
	}
	if l.color != "" {
		t.Errorf("color = %q, want unchanged", l.color)
	}
}

func TestAssignProperties_Idempotent(t *testing.T) {
	l := newTestLabel("x")
	source := Values{"color": "red", "label": "y"}
	for i := 0; i < 2; i++ {
		if err := AssignProperties(l, source, "color", "label"); err != nil {
			t.Fatal(err)
		}
	}
	if l.color != "red" || l.label != "y" {
		t.Errorf("state = %q/%q", l.color, l.label)
	}
}

func TestAssignProperties_FromOtherSources(t *testing.T) {
	l := newTestLabel("")
	props := PropsOf(map[Key]any{"color": "green"})
	if err := AssignProperties(l, props, "color"); err != nil {
		t.Fatal(err)
	}
	if l.color != "green" {
		t.Errorf("color from Props = %q", l.color)
	}

	other := newTestLabel("from-target")
	target := NewObject()
	if err := BindProperties(target, other, "label"); err != nil {
		t.Fatal(err)
	}
	if err := AssignProperties(l, target, "label"); err != nil {
		t.Fatal(err)
	}
	if l.label != "from-target" {
		t.Errorf("label from Object = %q", l.label)
	}
}

func TestAssignProperties_LiftedChain(t *testing.T) {
	b := &testButton{}
	if err := AssignProperties(b, Values{"pressed": true, "color": "red"}, "pressed", "color"); err != nil {
		t.Fatal(err)
	}
	if !b.pressed || b.color != "red" {
		t.Errorf("button = pressed:%v color:%q", b.pressed, b.color)
	}
}
