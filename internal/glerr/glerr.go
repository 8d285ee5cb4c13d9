// Package glerr reads error state and diagnostic logs back from the GL
// driver. Every boundary call in this library can be followed by Check to
// surface errors the driver recorded.
package glerr

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

func flagName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	}
	return fmt.Sprintf("0x%04X", code)
}

// Check drains the driver's error flags. It returns nil when no error was
// recorded, otherwise an error naming every flag that was set.
func Check() error {
	var flags []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		flags = append(flags, flagName(code))
	}
	if len(flags) == 0 {
		return nil
	}
	return fmt.Errorf("gl error: %s", strings.Join(flags, ", "))
}

// ShaderInfoLog returns the compiler diagnostic text for a shader object.
func ShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := make([]byte, length)
	gl.GetShaderInfoLog(shader, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// ProgramInfoLog returns the linker diagnostic text for a program object.
func ProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := make([]byte, length)
	gl.GetProgramInfoLog(program, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

// StageName returns a descriptive name for a shader stage enum.
func StageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	case gl.GEOMETRY_SHADER:
		return "geometry shader"
	case gl.COMPUTE_SHADER:
		return "compute shader"
	case gl.TESS_CONTROL_SHADER:
		return "tessellation control shader"
	case gl.TESS_EVALUATION_SHADER:
		return "tessellation evaluation shader"
	}
	return "unknown shader"
}
