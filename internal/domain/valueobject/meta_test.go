package valueobject

import (
	"strings"
	"testing"
	"time"
)

func TestMeta_Int64(t *testing.T) {
	tests := []struct {
		name   string
		meta   Meta
		want   int64
		wantOK bool
	}{
		{name: "int64", meta: Meta{MetaKeyCreateAt: int64(42)}, want: 42, wantOK: true},
		{name: "int from yaml", meta: Meta{MetaKeyCreateAt: 42}, want: 42, wantOK: true},
		{name: "float from json", meta: Meta{MetaKeyCreateAt: float64(42)}, want: 42, wantOK: true},
		{name: "string", meta: Meta{MetaKeyCreateAt: "42"}, wantOK: false},
		{name: "missing", meta: Meta{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.meta.Int64(MetaKeyCreateAt)
			if ok != tt.wantOK {
				t.Fatalf("Int64() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeta_Clone(t *testing.T) {
	m := Meta{MetaKeyTypeName: "CardShape"}
	c := m.Clone()
	c[MetaKeyTypeName] = "changed"

	if m.TypeName() != "CardShape" {
		t.Error("Clone() should not share the underlying map")
	}
	if Meta(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestMeta_Touch(t *testing.T) {
	now := time.UnixMilli(2000)

	withUpdate := Meta{MetaKeyUpdateAt: int64(1000)}
	if !withUpdate.Touch(now) {
		t.Fatal("Touch() should report true when updateAt is tracked")
	}
	if v, _ := withUpdate.Int64(MetaKeyUpdateAt); v != 2000 {
		t.Errorf("updateAt = %d, want 2000", v)
	}

	without := Meta{MetaKeyCreateAt: int64(1000)}
	if without.Touch(now) {
		t.Error("Touch() should not add updateAt")
	}
	if _, ok := without[MetaKeyUpdateAt]; ok {
		t.Error("updateAt should stay absent")
	}
}

func TestShapeID(t *testing.T) {
	id := NewShapeID()
	if !strings.HasPrefix(id.String(), "shape:") {
		t.Errorf("NewShapeID() = %s, want shape: prefix", id)
	}
	if NewShapeID() == id {
		t.Error("NewShapeID() should be unique")
	}

	parsed, err := ParseShapeID("abc")
	if err != nil {
		t.Fatalf("ParseShapeID() unexpected error = %v", err)
	}
	if parsed != "shape:abc" {
		t.Errorf("ParseShapeID() = %s, want shape:abc", parsed)
	}
	if _, err := ParseShapeID("  "); err == nil {
		t.Error("ParseShapeID() should reject blank ids")
	}
	if _, err := ParseShapeID("shape:"); err == nil {
		t.Error("ParseShapeID() should reject an empty body")
	}
}

func TestRect_Union(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 20, Y: -5, W: 10, H: 10}

	got := a.Union(b)
	want := Rect{X: 0, Y: -5, W: 30, H: 15}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if c := got.Center(); c.X != 15 || c.Y != 2.5 {
		t.Errorf("Center() = %+v", c)
	}
}
