package component

import (
	"strings"
	"testing"
)

func TestDecodeValues(t *testing.T) {
	values, err := DecodeValues([]byte("color: red\nlabel: hello\nsize: 3\n"))
	if err != nil {
		t.Fatalf("DecodeValues: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("len = %d, want 3", len(values))
	}
	if v, _ := values.Lookup("size"); v != 3 {
		t.Errorf("size = %v (%T), want 3", v, v)
	}

	l := newTestLabel("")
	if err := AssignProperties(l, values, "color", "label"); err != nil {
		t.Fatal(err)
	}
	if l.color != "red" || l.label != "hello" {
		t.Errorf("label = %q/%q", l.color, l.label)
	}
}

func TestDecodeValues_Empty(t *testing.T) {
	values, err := DecodeValues(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestDecodeValues_NotAMapping(t *testing.T) {
	if _, err := DecodeValues([]byte("- a\n- b\n")); err == nil {
		t.Error("expected an error for a sequence document")
	}
}

func TestReadValues(t *testing.T) {
	values, err := ReadValues(strings.NewReader("color: blue\n---\ncolor: red\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := values.Lookup("color"); v != "blue" {
		t.Errorf("color = %v, want the first document", v)
	}

	values, err = ReadValues(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty reader: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}
