package glshader

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/kjkrol/gokgl/internal/logx"
	"github.com/kjkrol/gokgl/pkg/glbuf"
	"github.com/kjkrol/gokgl/pkg/gltype"
)

// testShader builds a shader with seeded reflection maps, without a GL
// context. Only code paths that stop before a driver call may run on it.
func testShader(debug bool, log *slog.Logger, attrs, unis map[string]variable) *Shader {
	s := &Shader{
		attributes:       attrs,
		uniforms:         unis,
		warnedAttributes: make(map[string]struct{}),
		warnedUniforms:   make(map[string]struct{}),
		buffers:          glbuf.New(nil),
		debug:            debug,
	}
	if attrs == nil {
		s.attributes = map[string]variable{}
	}
	if unis == nil {
		s.uniforms = map[string]variable{}
	}
	s.log = logx.OrNop(log)
	return s
}

func TestHasAttributeHasUniform(t *testing.T) {
	s := testShader(false, nil,
		map[string]variable{"a_position": {0, gltype.Vec4}},
		map[string]variable{"u_mvpMatrix": {1, gltype.Mat4}},
	)

	if !s.HasAttribute("a_position") {
		t.Error("HasAttribute(a_position) = false, want true")
	}
	if s.HasAttribute("a_missing") {
		t.Error("HasAttribute(a_missing) = true, want false")
	}
	if !s.HasUniform("u_mvpMatrix") {
		t.Error("HasUniform(u_mvpMatrix) = false, want true")
	}
	if s.HasUniform("u_missing") {
		t.Error("HasUniform(u_missing) = true, want false")
	}
}

func TestLookupKnown(t *testing.T) {
	s := testShader(false, nil,
		map[string]variable{"a_position": {2, gltype.Vec4}},
		map[string]variable{"u_colour": {5, gltype.Vec3}},
	)

	loc, err := s.Attribute("a_position")
	if err != nil || loc != 2 {
		t.Errorf("Attribute(a_position) = %d, %v, want 2, nil", loc, err)
	}
	loc, err = s.Uniform("u_colour")
	if err != nil || loc != 5 {
		t.Errorf("Uniform(u_colour) = %d, %v, want 5, nil", loc, err)
	}
}

func TestLookupUnknownFatal(t *testing.T) {
	s := testShader(false, nil, nil, nil)

	if _, err := s.Attribute("a_missing"); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("Attribute(a_missing) error = %v, want ErrUnknownAttribute", err)
	}
	if _, err := s.Uniform("u_missing"); !errors.Is(err, ErrUnknownUniform) {
		t.Errorf("Uniform(u_missing) error = %v, want ErrUnknownUniform", err)
	}
}

func TestLookupUnknownDebugLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := testShader(true, slog.New(slog.NewTextHandler(&buf, nil)), nil, nil)

	loc, err := s.Uniform("u_missing")
	if err != nil {
		t.Fatalf("debug Uniform(u_missing) error: %v", err)
	}
	if loc != invalidLocation {
		t.Errorf("debug Uniform(u_missing) = %d, want %d", loc, invalidLocation)
	}
	first := buf.String()
	if !strings.Contains(first, "u_missing") {
		t.Fatalf("first lookup logged %q, want a u_missing warning", first)
	}

	// the same name must not be logged again
	if _, err := s.Uniform("u_missing"); err != nil {
		t.Fatalf("second lookup error: %v", err)
	}
	if got := buf.String(); got != first {
		t.Errorf("second lookup re-logged: %q", got)
	}

	// a distinct name gets its own warning
	if _, err := s.Uniform("u_other"); err != nil {
		t.Fatalf("distinct lookup error: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "u_other") {
		t.Errorf("distinct name not logged: %q", got)
	}
}

func TestLookupUnknownDebugAttributes(t *testing.T) {
	var buf bytes.Buffer
	s := testShader(true, slog.New(slog.NewTextHandler(&buf, nil)), nil, nil)

	for i := 0; i < 3; i++ {
		loc, err := s.Attribute("a_missing")
		if err != nil {
			t.Fatalf("debug Attribute error: %v", err)
		}
		if loc != invalidLocation {
			t.Errorf("debug Attribute = %d, want %d", loc, invalidLocation)
		}
	}
	if n := strings.Count(buf.String(), "a_missing"); n != 1 {
		t.Errorf("a_missing warned %d times, want 1", n)
	}
}

func TestSetAttributeTypeMismatch(t *testing.T) {
	s := testShader(false, nil,
		map[string]variable{"a_position": {0, gltype.Vec4}}, nil)
	s.buffers.Register(7, gltype.Vec3)

	err := s.SetAttribute("a_position", 7)
	if !errors.Is(err, glbuf.ErrTypeMismatch) {
		t.Fatalf("SetAttribute error = %v, want glbuf.ErrTypeMismatch", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "vec3") || !strings.Contains(msg, "vec4") {
		t.Errorf("mismatch error %q does not name vec3 and vec4", msg)
	}
}

func TestSetAttributeUnallocatedBuffer(t *testing.T) {
	s := testShader(false, nil,
		map[string]variable{"a_position": {0, gltype.Vec4}}, nil)

	if err := s.SetAttribute("a_position", 42); !errors.Is(err, glbuf.ErrUnallocated) {
		t.Errorf("SetAttribute error = %v, want glbuf.ErrUnallocated", err)
	}
}

func TestSetAttributeUnknownName(t *testing.T) {
	s := testShader(false, nil, nil, nil)
	if err := s.SetAttribute("a_missing", 1); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("SetAttribute error = %v, want ErrUnknownAttribute", err)
	}

	// debug mode degrades to a no-op
	s = testShader(true, nil, nil, nil)
	if err := s.SetAttribute("a_missing", 1); err != nil {
		t.Errorf("debug SetAttribute error = %v, want nil", err)
	}
}
