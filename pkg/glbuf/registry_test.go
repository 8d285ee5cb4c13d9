package glbuf

import (
	"errors"
	"strings"
	"testing"

	"github.com/kjkrol/gokgl/pkg/gltype"
)

// seed populates a registry without touching the driver.
func seed(entries map[uint32]gltype.Type) *Registry {
	r := New(nil)
	for buffer, t := range entries {
		r.types[buffer] = t
	}
	return r
}

func TestTypeOf(t *testing.T) {
	r := seed(map[uint32]gltype.Type{7: gltype.Vec3, 12: gltype.Int})

	got, err := r.TypeOf(7)
	if err != nil {
		t.Fatalf("TypeOf(7) error: %v", err)
	}
	if got != gltype.Vec3 {
		t.Errorf("TypeOf(7) = %s, want vec3", got)
	}

	if _, err := r.TypeOf(99); !errors.Is(err, ErrUnallocated) {
		t.Errorf("TypeOf(99) error = %v, want ErrUnallocated", err)
	}
}

func TestCheckType(t *testing.T) {
	r := seed(map[uint32]gltype.Type{7: gltype.Vec3})

	if err := r.CheckType(7, gltype.Vec3); err != nil {
		t.Errorf("CheckType matching: %v", err)
	}

	err := r.CheckType(7, gltype.Vec4)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("CheckType mismatched error = %v, want ErrTypeMismatch", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "vec4") || !strings.Contains(msg, "vec3") {
		t.Errorf("mismatch error %q does not name both types", msg)
	}
}

func TestCheckTypeUnallocated(t *testing.T) {
	r := New(nil)
	if err := r.CheckType(1, gltype.Vec2); !errors.Is(err, ErrUnallocated) {
		t.Errorf("CheckType on empty registry error = %v, want ErrUnallocated", err)
	}
}

func TestCreateRejectsNonAttributeType(t *testing.T) {
	// types without an element count are rejected before any driver call
	r := New(nil)
	if _, err := r.Create([]float32{0}, gltype.Sampler2D); !errors.Is(err, gltype.ErrUnsupportedType) {
		t.Errorf("Create(sampler2D) error = %v, want ErrUnsupportedType", err)
	}
}
