// Package glbuf creates vertex and index buffers and remembers the GLSL
// type each buffer was created with, so that binding a buffer to a shader
// attribute of a different type is caught as an error instead of silently
// reinterpreting the data.
package glbuf

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokgl/internal/glerr"
	"github.com/kjkrol/gokgl/internal/logx"
	"github.com/kjkrol/gokgl/pkg/gltype"
)

var (
	ErrUnallocated  = errors.New("buffer has not been allocated")
	ErrTypeMismatch = errors.New("buffer type mismatch")
)

// Registry tracks the type tag of every buffer it creates. It does not own
// the buffers; their lifetime is the caller's concern. A Registry is bound
// to a single GL context and must be used from the context's thread.
type Registry struct {
	types map[uint32]gltype.Type
	log   *slog.Logger
}

// New returns an empty registry. A nil logger silences the non-fatal
// diagnostics buffer creation can emit.
func New(log *slog.Logger) *Registry {
	return &Registry{
		types: make(map[uint32]gltype.Type),
		log:   logx.OrNop(log),
	}
}

// Register records the type tag of a buffer that was created outside the
// registry, so it can be bound to shader attributes like any other. An
// existing tag for the same handle is overwritten.
func (r *Registry) Register(buffer uint32, t gltype.Type) {
	r.types[buffer] = t
}

// TypeOf returns the type a buffer was created with. Buffers not created
// through this registry report ErrUnallocated.
func (r *Registry) TypeOf(buffer uint32) (gltype.Type, error) {
	t, ok := r.types[buffer]
	if !ok {
		return 0, fmt.Errorf("%w: buffer %d", ErrUnallocated, buffer)
	}
	return t, nil
}

// CheckType verifies that a buffer was created with the expected type.
func (r *Registry) CheckType(buffer uint32, want gltype.Type) error {
	got, err := r.TypeOf(buffer)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected buffer of type %s, got %s", ErrTypeMismatch, want, got)
	}
	return nil
}

// Create allocates a vertex buffer, uploads data into it and records its
// type tag. When the number of floats is not a multiple of the type's
// element count a warning is logged, but the buffer is still created.
func (r *Registry) Create(data []float32, t gltype.Type) (uint32, error) {
	count, err := t.Count()
	if err != nil {
		return 0, err
	}

	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	if err := glerr.Check(); err != nil {
		return 0, fmt.Errorf("create %s buffer: %w", t, err)
	}

	r.types[buffer] = t
	if len(data)%count != 0 {
		r.log.Warn("buffer length is not a multiple of the element count",
			"type", t.String(), "count", count, "length", len(data))
	}
	return buffer, nil
}

// CreateVec2 creates a vec2 buffer from a slice of vectors.
func (r *Registry) CreateVec2(data []mgl32.Vec2) (uint32, error) {
	flat := make([]float32, 0, 2*len(data))
	for _, v := range data {
		flat = append(flat, v[0], v[1])
	}
	return r.Create(flat, gltype.Vec2)
}

// CreateVec3 creates a vec3 buffer from a slice of vectors.
func (r *Registry) CreateVec3(data []mgl32.Vec3) (uint32, error) {
	flat := make([]float32, 0, 3*len(data))
	for _, v := range data {
		flat = append(flat, v[0], v[1], v[2])
	}
	return r.Create(flat, gltype.Vec3)
}

// CreateVec4 creates a vec4 buffer from a slice of vectors.
func (r *Registry) CreateVec4(data []mgl32.Vec4) (uint32, error) {
	flat := make([]float32, 0, 4*len(data))
	for _, v := range data {
		flat = append(flat, v[0], v[1], v[2], v[3])
	}
	return r.Create(flat, gltype.Vec4)
}

// CreateIndex allocates an index buffer and uploads the indices. Index
// buffers always carry the int scalar tag.
func (r *Registry) CreateIndex(indices []uint32) (uint32, error) {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	if err := glerr.Check(); err != nil {
		return 0, fmt.Errorf("create index buffer: %w", err)
	}

	r.types[buffer] = gltype.Int
	return buffer, nil
}
