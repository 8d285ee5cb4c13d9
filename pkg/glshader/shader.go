// Package glshader compiles and links OpenGL shader programs, reflects
// their active attributes and uniforms, and exposes typed setters that
// validate values against the reflected declarations before handing them
// to the driver.
package glshader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/kjkrol/gokgl/internal/glerr"
	"github.com/kjkrol/gokgl/internal/logx"
	"github.com/kjkrol/gokgl/pkg/glbuf"
	"github.com/kjkrol/gokgl/pkg/gltype"
)

var (
	ErrCompile          = errors.New("shader compilation failed")
	ErrLink             = errors.New("program link failed")
	ErrFramebuffer      = errors.New("framebuffer is not complete")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownUniform   = errors.New("unknown uniform")
	ErrTypeMismatch     = errors.New("type mismatch")
)

// invalidLocation is returned for unknown names in debug mode; setters
// treat it as a no-op so rendering can continue in a degraded way.
const invalidLocation int32 = -1

// Config configures a shader. Buffers is required: SetAttribute uses it to
// validate buffer types against the shader's attribute declarations.
type Config struct {
	// Buffers is the registry the application creates its buffers with.
	Buffers *glbuf.Registry
	// Logger receives the non-fatal diagnostics; nil silences them.
	Logger *slog.Logger
	// Debug turns unknown attribute/uniform names from errors into
	// once-per-name warnings.
	Debug bool
}

type variable struct {
	location int32
	typ      gltype.Type
}

// Shader is a compiled and linked vertex+fragment program together with
// its vertex-array object and the name-keyed maps of active attributes
// and uniforms recorded at link time. The maps never change after
// construction.
type Shader struct {
	program uint32
	vao     uint32

	attributes map[string]variable
	uniforms   map[string]variable

	warnedAttributes map[string]struct{}
	warnedUniforms   map[string]struct{}

	buffers *glbuf.Registry
	log     *slog.Logger
	debug   bool
}

// New compiles the vertex and fragment sources, links them into a program
// and reflects its interface. Each stage is compiled independently; a
// failure names the stage and carries the compiler's diagnostic text.
// Stage objects are released once linking is done, whatever the outcome.
func New(cfg Config, vertexSrc, fragmentSrc string) (*Shader, error) {
	if cfg.Buffers == nil {
		return nil, errors.New("glshader: Config.Buffers is required")
	}

	vert, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	frag, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	gl.DetachShader(program, vert)
	gl.DetachShader(program, frag)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		log := glerr.ProgramInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("%w: %s", ErrLink, log)
	}

	s := &Shader{
		program:          program,
		warnedAttributes: make(map[string]struct{}),
		warnedUniforms:   make(map[string]struct{}),
		buffers:          cfg.Buffers,
		log:              logx.OrNop(cfg.Logger),
		debug:            cfg.Debug,
	}
	gl.GenVertexArrays(1, &s.vao)
	s.reflectAttributes()
	s.reflectUniforms()
	return s, nil
}

// Load reads the vertex and fragment sources from files and compiles them.
func Load(cfg Config, vertexPath, fragmentPath string) (*Shader, error) {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	return New(cfg, string(vertexSrc), string(fragmentSrc))
}

func compileStage(stage uint32, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var compiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		log := glerr.ShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s: %s", ErrCompile, glerr.StageName(stage), log)
	}
	return shader, nil
}

func (s *Shader) reflectAttributes() {
	s.attributes = make(map[string]variable)

	var count, maxLen int32
	gl.GetProgramiv(s.program, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(s.program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]byte, maxLen)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(s.program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		s.attributes[name] = variable{
			location: gl.GetAttribLocation(s.program, gl.Str(name+"\x00")),
			typ:      gltype.Type(xtype),
		}
	}
}

func (s *Shader) reflectUniforms() {
	s.uniforms = make(map[string]variable)

	var count, maxLen int32
	gl.GetProgramiv(s.program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(s.program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]byte, maxLen)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(s.program, uint32(i), maxLen, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])
		s.uniforms[name] = variable{
			location: gl.GetUniformLocation(s.program, gl.Str(name+"\x00")),
			typ:      gltype.Type(xtype),
		}
	}
}

// Use makes this shader the active program and binds its vertex array.
func (s *Shader) Use() {
	gl.UseProgram(s.program)
	gl.BindVertexArray(s.vao)
}

// Close deletes the program and its vertex array. The shader must not be
// used afterwards.
func (s *Shader) Close() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// Program returns the native program handle.
func (s *Shader) Program() uint32 { return s.program }

// HasAttribute reports whether the program has an active attribute with
// the given name.
func (s *Shader) HasAttribute(name string) bool {
	_, ok := s.attributes[name]
	return ok
}

// HasUniform reports whether the program has an active uniform with the
// given name.
func (s *Shader) HasUniform(name string) bool {
	_, ok := s.uniforms[name]
	return ok
}

// Attribute returns the location of an attribute. An unknown name is an
// error, unless debug mode is on: then it is logged once per name and an
// invalid location is returned, which setters treat as a no-op.
func (s *Shader) Attribute(name string) (int32, error) {
	v, ok, err := s.attributeVar(name)
	if err != nil || !ok {
		return invalidLocation, err
	}
	return v.location, nil
}

// Uniform returns the location of a uniform, with the same unknown-name
// behavior as Attribute.
func (s *Shader) Uniform(name string) (int32, error) {
	v, ok, err := s.uniformVar(name)
	if err != nil || !ok {
		return invalidLocation, err
	}
	return v.location, nil
}

func (s *Shader) attributeVar(name string) (variable, bool, error) {
	if v, ok := s.attributes[name]; ok {
		return v, true, nil
	}
	if !s.debug {
		return variable{}, false, fmt.Errorf("%w: %q; enable Config.Debug to continue with a warning", ErrUnknownAttribute, name)
	}
	if _, warned := s.warnedAttributes[name]; !warned {
		s.warnedAttributes[name] = struct{}{}
		s.log.Warn("unknown attribute", "name", name)
	}
	return variable{}, false, nil
}

func (s *Shader) uniformVar(name string) (variable, bool, error) {
	if v, ok := s.uniforms[name]; ok {
		return v, true, nil
	}
	if !s.debug {
		return variable{}, false, fmt.Errorf("%w: %q; enable Config.Debug to continue with a warning", ErrUnknownUniform, name)
	}
	if _, warned := s.warnedUniforms[name]; !warned {
		s.warnedUniforms[name] = struct{}{}
		s.log.Warn("unknown uniform", "name", name)
	}
	return variable{}, false, nil
}

// SetAttribute binds a buffer to a shader attribute. The buffer must have
// been created with the type the attribute is declared with; the attribute
// is then enabled at its reflected location with the element count and
// base element type derived from that type.
func (s *Shader) SetAttribute(name string, buffer uint32) error {
	v, ok, err := s.attributeVar(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := s.buffers.CheckType(buffer, v.typ); err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	count, err := v.typ.Count()
	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}
	element, err := v.typ.Element()
	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointer(uint32(v.location), int32(count), element.GL(), false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(uint32(v.location))
	return nil
}
