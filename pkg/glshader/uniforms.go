package glshader

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokgl/pkg/gltype"
)

func mismatch(name string, want gltype.Type, got string) error {
	return fmt.Errorf("%w: uniform %q: expected %s, got %s", ErrTypeMismatch, name, want, got)
}

// SetUniformBool sets a bool uniform.
func (s *Shader) SetUniformBool(name string, value bool) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Bool {
		return mismatch(name, v.typ, "bool")
	}
	var b uint32
	if value {
		b = 1
	}
	gl.Uniform1ui(v.location, b)
	return nil
}

// SetUniformInt sets an int, uint or sampler2D uniform.
func (s *Shader) SetUniformInt(name string, value int32) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	switch v.typ {
	case gltype.UInt:
		gl.Uniform1ui(v.location, uint32(value))
	case gltype.Int, gltype.Sampler2D:
		gl.Uniform1i(v.location, value)
	default:
		return mismatch(name, v.typ, "int")
	}
	return nil
}

// SetUniformFloat sets a float uniform.
func (s *Shader) SetUniformFloat(name string, value float32) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Float {
		return mismatch(name, v.typ, "float")
	}
	gl.Uniform1f(v.location, value)
	return nil
}

// SetUniformInts sets an int or uint scalar or vector uniform from a
// slice. The slice length must equal the type's element count.
func (s *Shader) SetUniformInts(name string, value []int32) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	count, err := v.typ.Count()
	if err != nil {
		return mismatch(name, v.typ, fmt.Sprintf("[]int32 of length %d", len(value)))
	}
	if len(value) != count {
		return mismatch(name, v.typ, fmt.Sprintf("[]int32 of length %d", len(value)))
	}

	switch v.typ {
	case gltype.Int:
		gl.Uniform1i(v.location, value[0])
	case gltype.IVec2:
		gl.Uniform2i(v.location, value[0], value[1])
	case gltype.IVec3:
		gl.Uniform3i(v.location, value[0], value[1], value[2])
	case gltype.IVec4:
		gl.Uniform4i(v.location, value[0], value[1], value[2], value[3])
	case gltype.UInt:
		gl.Uniform1ui(v.location, uint32(value[0]))
	case gltype.UVec2:
		gl.Uniform2ui(v.location, uint32(value[0]), uint32(value[1]))
	case gltype.UVec3:
		gl.Uniform3ui(v.location, uint32(value[0]), uint32(value[1]), uint32(value[2]))
	case gltype.UVec4:
		gl.Uniform4ui(v.location, uint32(value[0]), uint32(value[1]), uint32(value[2]), uint32(value[3]))
	default:
		return mismatch(name, v.typ, fmt.Sprintf("[]int32 of length %d", len(value)))
	}
	return nil
}

// SetUniformFloats sets a float scalar, vector or matrix uniform from a
// slice. The slice length must equal the type's element count, and matrix
// values must be in column-major order.
func (s *Shader) SetUniformFloats(name string, value []float32) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	count, err := v.typ.Count()
	if err != nil {
		return mismatch(name, v.typ, fmt.Sprintf("[]float32 of length %d", len(value)))
	}
	if len(value) != count {
		return mismatch(name, v.typ, fmt.Sprintf("[]float32 of length %d", len(value)))
	}

	switch v.typ {
	case gltype.Float:
		gl.Uniform1f(v.location, value[0])
	case gltype.Vec2:
		gl.Uniform2f(v.location, value[0], value[1])
	case gltype.Vec3:
		gl.Uniform3f(v.location, value[0], value[1], value[2])
	case gltype.Vec4:
		gl.Uniform4f(v.location, value[0], value[1], value[2], value[3])
	case gltype.Mat2:
		gl.UniformMatrix2fv(v.location, 1, false, &value[0])
	case gltype.Mat3:
		gl.UniformMatrix3fv(v.location, 1, false, &value[0])
	case gltype.Mat4:
		gl.UniformMatrix4fv(v.location, 1, false, &value[0])
	default:
		return mismatch(name, v.typ, fmt.Sprintf("[]float32 of length %d", len(value)))
	}
	return nil
}

// SetUniformVec2 sets a vec2 uniform.
func (s *Shader) SetUniformVec2(name string, value mgl32.Vec2) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Vec2 {
		return mismatch(name, v.typ, "vec2")
	}
	gl.Uniform2fv(v.location, 1, &value[0])
	return nil
}

// SetUniformVec3 sets a vec3 uniform.
func (s *Shader) SetUniformVec3(name string, value mgl32.Vec3) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Vec3 {
		return mismatch(name, v.typ, "vec3")
	}
	gl.Uniform3fv(v.location, 1, &value[0])
	return nil
}

// SetUniformVec4 sets a vec4 uniform.
func (s *Shader) SetUniformVec4(name string, value mgl32.Vec4) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Vec4 {
		return mismatch(name, v.typ, "vec4")
	}
	gl.Uniform4fv(v.location, 1, &value[0])
	return nil
}

// SetUniformMat2 sets a mat2 uniform. mgl32 matrices are column-major,
// matching the upload order.
func (s *Shader) SetUniformMat2(name string, value mgl32.Mat2) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Mat2 {
		return mismatch(name, v.typ, "mat2")
	}
	gl.UniformMatrix2fv(v.location, 1, false, &value[0])
	return nil
}

// SetUniformMat3 sets a mat3 uniform.
func (s *Shader) SetUniformMat3(name string, value mgl32.Mat3) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Mat3 {
		return mismatch(name, v.typ, "mat3")
	}
	gl.UniformMatrix3fv(v.location, 1, false, &value[0])
	return nil
}

// SetUniformMat4 sets a mat4 uniform.
func (s *Shader) SetUniformMat4(name string, value mgl32.Mat4) error {
	v, ok, err := s.uniformVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if v.typ != gltype.Mat4 {
		return mismatch(name, v.typ, "mat4")
	}
	gl.UniformMatrix4fv(v.location, 1, false, &value[0])
	return nil
}
