package glshader

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokgl/pkg/gltype"
)

// All cases here exercise the validation half of the setters, which runs
// before any driver call.

func TestSetUniformVecMismatch(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_colour": {0, gltype.Vec4},
	})

	err := s.SetUniformVec3("u_colour", mgl32.Vec3{1, 0, 0})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("SetUniformVec3 on vec4 error = %v, want ErrTypeMismatch", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "vec4") || !strings.Contains(msg, "vec3") {
		t.Errorf("mismatch error %q does not name expected and received shapes", msg)
	}

	if err := s.SetUniformVec2("u_colour", mgl32.Vec2{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformVec2 on vec4 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformScalarMismatch(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_scale":  {0, gltype.Float},
		"u_count":  {1, gltype.Int},
		"u_toggle": {2, gltype.Bool},
	})

	if err := s.SetUniformInt("u_scale", 1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformInt on float error = %v, want ErrTypeMismatch", err)
	}
	if err := s.SetUniformFloat("u_count", 1); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformFloat on int error = %v, want ErrTypeMismatch", err)
	}
	if err := s.SetUniformBool("u_count", true); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformBool on int error = %v, want ErrTypeMismatch", err)
	}
	if err := s.SetUniformFloat("u_toggle", 0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformFloat on bool error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformMatMismatch(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_model": {0, gltype.Mat4},
	})

	if err := s.SetUniformMat3("u_model", mgl32.Ident3()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformMat3 on mat4 error = %v, want ErrTypeMismatch", err)
	}
	if err := s.SetUniformMat2("u_model", mgl32.Ident2()); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetUniformMat2 on mat4 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformFloatsLength(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_model":  {0, gltype.Mat4},
		"u_colour": {1, gltype.Vec4},
	})

	err := s.SetUniformFloats("u_model", make([]float32, 9))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("9 floats into mat4 error = %v, want ErrTypeMismatch", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "mat4") || !strings.Contains(msg, "9") {
		t.Errorf("error %q does not report expected type and received length", msg)
	}

	if err := s.SetUniformFloats("u_colour", []float32{1, 2, 3}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("3 floats into vec4 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformFloatsOnIntType(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_cells": {0, gltype.IVec3},
	})
	if err := s.SetUniformFloats("u_cells", []float32{1, 2, 3}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("floats into ivec3 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformIntsLength(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_cells": {0, gltype.IVec4},
	})

	if err := s.SetUniformInts("u_cells", []int32{1, 2, 3}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("3 ints into ivec4 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformIntsOnFloatType(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_colour": {0, gltype.Vec4},
	})
	if err := s.SetUniformInts("u_colour", make([]int32, 4)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ints into vec4 error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformSamplerShape(t *testing.T) {
	s := testShader(false, nil, nil, map[string]variable{
		"u_texture": {0, gltype.Sampler2D},
	})
	// samplers have no element count; slice setters must reject them
	if err := s.SetUniformFloats("u_texture", []float32{0}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("floats into sampler2D error = %v, want ErrTypeMismatch", err)
	}
	if err := s.SetUniformInts("u_texture", []int32{0}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ints into sampler2D error = %v, want ErrTypeMismatch", err)
	}
}

func TestSetUniformUnknownName(t *testing.T) {
	s := testShader(false, nil, nil, nil)
	if err := s.SetUniformFloat("u_missing", 1); !errors.Is(err, ErrUnknownUniform) {
		t.Errorf("SetUniformFloat error = %v, want ErrUnknownUniform", err)
	}

	// debug mode: silent no-op, nothing reaches the driver
	s = testShader(true, nil, nil, nil)
	if err := s.SetUniformMat4("u_missing", mgl32.Ident4()); err != nil {
		t.Errorf("debug SetUniformMat4 error = %v, want nil", err)
	}
	if err := s.SetUniformInts("u_missing", []int32{1, 2}); err != nil {
		t.Errorf("debug SetUniformInts error = %v, want nil", err)
	}
}
