// Package gltype maps OpenGL shader data type enums to their GLSL names,
// element counts and base element types.
package gltype

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Type identifies a GLSL data type as reported by the GL reflection API
// (glGetActiveAttrib / glGetActiveUniform). The value is the native enum.
type Type uint32

var (
	ErrUnknownType     = errors.New("unknown GL type")
	ErrUnsupportedType = errors.New("unsupported GLSL attribute type")
)

const (
	Float Type = gl.FLOAT
	Vec2  Type = gl.FLOAT_VEC2
	Vec3  Type = gl.FLOAT_VEC3
	Vec4  Type = gl.FLOAT_VEC4

	Double Type = gl.DOUBLE
	DVec2  Type = gl.DOUBLE_VEC2
	DVec3  Type = gl.DOUBLE_VEC3
	DVec4  Type = gl.DOUBLE_VEC4

	Int   Type = gl.INT
	IVec2 Type = gl.INT_VEC2
	IVec3 Type = gl.INT_VEC3
	IVec4 Type = gl.INT_VEC4

	UInt  Type = gl.UNSIGNED_INT
	UVec2 Type = gl.UNSIGNED_INT_VEC2
	UVec3 Type = gl.UNSIGNED_INT_VEC3
	UVec4 Type = gl.UNSIGNED_INT_VEC4

	Bool  Type = gl.BOOL
	BVec2 Type = gl.BOOL_VEC2
	BVec3 Type = gl.BOOL_VEC3
	BVec4 Type = gl.BOOL_VEC4

	Mat2   Type = gl.FLOAT_MAT2
	Mat3   Type = gl.FLOAT_MAT3
	Mat4   Type = gl.FLOAT_MAT4
	Mat2x3 Type = gl.FLOAT_MAT2x3
	Mat2x4 Type = gl.FLOAT_MAT2x4
	Mat3x2 Type = gl.FLOAT_MAT3x2
	Mat3x4 Type = gl.FLOAT_MAT3x4
	Mat4x2 Type = gl.FLOAT_MAT4x2
	Mat4x3 Type = gl.FLOAT_MAT4x3

	DMat2   Type = gl.DOUBLE_MAT2
	DMat3   Type = gl.DOUBLE_MAT3
	DMat4   Type = gl.DOUBLE_MAT4
	DMat2x3 Type = gl.DOUBLE_MAT2x3
	DMat2x4 Type = gl.DOUBLE_MAT2x4
	DMat3x2 Type = gl.DOUBLE_MAT3x2
	DMat3x4 Type = gl.DOUBLE_MAT3x4
	DMat4x2 Type = gl.DOUBLE_MAT4x2
	DMat4x3 Type = gl.DOUBLE_MAT4x3

	Sampler1D            Type = gl.SAMPLER_1D
	Sampler2D            Type = gl.SAMPLER_2D
	Sampler3D            Type = gl.SAMPLER_3D
	SamplerCube          Type = gl.SAMPLER_CUBE
	Sampler1DShadow      Type = gl.SAMPLER_1D_SHADOW
	Sampler2DShadow      Type = gl.SAMPLER_2D_SHADOW
	Sampler1DArray       Type = gl.SAMPLER_1D_ARRAY
	Sampler2DArray       Type = gl.SAMPLER_2D_ARRAY
	Sampler1DArrayShadow Type = gl.SAMPLER_1D_ARRAY_SHADOW
	Sampler2DArrayShadow Type = gl.SAMPLER_2D_ARRAY_SHADOW
	Sampler2DMS          Type = gl.SAMPLER_2D_MULTISAMPLE
	Sampler2DMSArray     Type = gl.SAMPLER_2D_MULTISAMPLE_ARRAY
	SamplerCubeShadow    Type = gl.SAMPLER_CUBE_SHADOW
	SamplerBuffer        Type = gl.SAMPLER_BUFFER
	Sampler2DRect        Type = gl.SAMPLER_2D_RECT
	Sampler2DRectShadow  Type = gl.SAMPLER_2D_RECT_SHADOW

	ISampler1D        Type = gl.INT_SAMPLER_1D
	ISampler2D        Type = gl.INT_SAMPLER_2D
	ISampler3D        Type = gl.INT_SAMPLER_3D
	ISamplerCube      Type = gl.INT_SAMPLER_CUBE
	ISampler1DArray   Type = gl.INT_SAMPLER_1D_ARRAY
	ISampler2DArray   Type = gl.INT_SAMPLER_2D_ARRAY
	ISampler2DMS      Type = gl.INT_SAMPLER_2D_MULTISAMPLE
	ISampler2DMSArray Type = gl.INT_SAMPLER_2D_MULTISAMPLE_ARRAY
	ISamplerBuffer    Type = gl.INT_SAMPLER_BUFFER
	ISampler2DRect    Type = gl.INT_SAMPLER_2D_RECT

	USampler1D        Type = gl.UNSIGNED_INT_SAMPLER_1D
	USampler2D        Type = gl.UNSIGNED_INT_SAMPLER_2D
	USampler3D        Type = gl.UNSIGNED_INT_SAMPLER_3D
	USamplerCube      Type = gl.UNSIGNED_INT_SAMPLER_CUBE
	USampler1DArray   Type = gl.UNSIGNED_INT_SAMPLER_1D_ARRAY
	USampler2DArray   Type = gl.UNSIGNED_INT_SAMPLER_2D_ARRAY
	USampler2DMS      Type = gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE
	USampler2DMSArray Type = gl.UNSIGNED_INT_SAMPLER_2D_MULTISAMPLE_ARRAY
	USamplerBuffer    Type = gl.UNSIGNED_INT_SAMPLER_BUFFER
	USampler2DRect    Type = gl.UNSIGNED_INT_SAMPLER_2D_RECT

	Image1D        Type = gl.IMAGE_1D
	Image2D        Type = gl.IMAGE_2D
	Image3D        Type = gl.IMAGE_3D
	Image2DRect    Type = gl.IMAGE_2D_RECT
	ImageCube      Type = gl.IMAGE_CUBE
	ImageBuffer    Type = gl.IMAGE_BUFFER
	Image1DArray   Type = gl.IMAGE_1D_ARRAY
	Image2DArray   Type = gl.IMAGE_2D_ARRAY
	Image2DMS      Type = gl.IMAGE_2D_MULTISAMPLE
	Image2DMSArray Type = gl.IMAGE_2D_MULTISAMPLE_ARRAY

	IImage1D        Type = gl.INT_IMAGE_1D
	IImage2D        Type = gl.INT_IMAGE_2D
	IImage3D        Type = gl.INT_IMAGE_3D
	IImage2DRect    Type = gl.INT_IMAGE_2D_RECT
	IImageCube      Type = gl.INT_IMAGE_CUBE
	IImageBuffer    Type = gl.INT_IMAGE_BUFFER
	IImage1DArray   Type = gl.INT_IMAGE_1D_ARRAY
	IImage2DArray   Type = gl.INT_IMAGE_2D_ARRAY
	IImage2DMS      Type = gl.INT_IMAGE_2D_MULTISAMPLE
	IImage2DMSArray Type = gl.INT_IMAGE_2D_MULTISAMPLE_ARRAY

	UImage1D        Type = gl.UNSIGNED_INT_IMAGE_1D
	UImage2D        Type = gl.UNSIGNED_INT_IMAGE_2D
	UImage3D        Type = gl.UNSIGNED_INT_IMAGE_3D
	UImage2DRect    Type = gl.UNSIGNED_INT_IMAGE_2D_RECT
	UImageCube      Type = gl.UNSIGNED_INT_IMAGE_CUBE
	UImageBuffer    Type = gl.UNSIGNED_INT_IMAGE_BUFFER
	UImage1DArray   Type = gl.UNSIGNED_INT_IMAGE_1D_ARRAY
	UImage2DArray   Type = gl.UNSIGNED_INT_IMAGE_2D_ARRAY
	UImage2DMS      Type = gl.UNSIGNED_INT_IMAGE_2D_MULTISAMPLE
	UImage2DMSArray Type = gl.UNSIGNED_INT_IMAGE_2D_MULTISAMPLE_ARRAY

	AtomicUInt Type = gl.UNSIGNED_INT_ATOMIC_COUNTER
)

var typeNames = map[Type]string{
	Float: "float",
	Vec2:  "vec2",
	Vec3:  "vec3",
	Vec4:  "vec4",

	Double: "double",
	DVec2:  "dvec2",
	DVec3:  "dvec3",
	DVec4:  "dvec4",

	Int:   "int",
	IVec2: "ivec2",
	IVec3: "ivec3",
	IVec4: "ivec4",

	UInt:  "uint",
	UVec2: "uvec2",
	UVec3: "uvec3",
	UVec4: "uvec4",

	Bool:  "bool",
	BVec2: "bvec2",
	BVec3: "bvec3",
	BVec4: "bvec4",

	Mat2:   "mat2",
	Mat3:   "mat3",
	Mat4:   "mat4",
	Mat2x3: "mat2x3",
	Mat2x4: "mat2x4",
	Mat3x2: "mat3x2",
	Mat3x4: "mat3x4",
	Mat4x2: "mat4x2",
	Mat4x3: "mat4x3",

	DMat2:   "dmat2",
	DMat3:   "dmat3",
	DMat4:   "dmat4",
	DMat2x3: "dmat2x3",
	DMat2x4: "dmat2x4",
	DMat3x2: "dmat3x2",
	DMat3x4: "dmat3x4",
	DMat4x2: "dmat4x2",
	DMat4x3: "dmat4x3",

	Sampler1D:            "sampler1D",
	Sampler2D:            "sampler2D",
	Sampler3D:            "sampler3D",
	SamplerCube:          "samplerCube",
	Sampler1DShadow:      "sampler1DShadow",
	Sampler2DShadow:      "sampler2DShadow",
	Sampler1DArray:       "sampler1DArray",
	Sampler2DArray:       "sampler2DArray",
	Sampler1DArrayShadow: "sampler1DArrayShadow",
	Sampler2DArrayShadow: "sampler2DArrayShadow",
	Sampler2DMS:          "sampler2DMS",
	Sampler2DMSArray:     "sampler2DMSArray",
	SamplerCubeShadow:    "samplerCubeShadow",
	SamplerBuffer:        "samplerBuffer",
	Sampler2DRect:        "sampler2DRect",
	Sampler2DRectShadow:  "sampler2DRectShadow",

	ISampler1D:        "isampler1D",
	ISampler2D:        "isampler2D",
	ISampler3D:        "isampler3D",
	ISamplerCube:      "isamplerCube",
	ISampler1DArray:   "isampler1DArray",
	ISampler2DArray:   "isampler2DArray",
	ISampler2DMS:      "isampler2DMS",
	ISampler2DMSArray: "isampler2DMSArray",
	ISamplerBuffer:    "isamplerBuffer",
	ISampler2DRect:    "isampler2DRect",

	USampler1D:        "usampler1D",
	USampler2D:        "usampler2D",
	USampler3D:        "usampler3D",
	USamplerCube:      "usamplerCube",
	USampler1DArray:   "usampler1DArray",
	USampler2DArray:   "usampler2DArray",
	USampler2DMS:      "usampler2DMS",
	USampler2DMSArray: "usampler2DMSArray",
	USamplerBuffer:    "usamplerBuffer",
	USampler2DRect:    "usampler2DRect",

	Image1D:        "image1D",
	Image2D:        "image2D",
	Image3D:        "image3D",
	Image2DRect:    "image2DRect",
	ImageCube:      "imageCube",
	ImageBuffer:    "imageBuffer",
	Image1DArray:   "image1DArray",
	Image2DArray:   "image2DArray",
	Image2DMS:      "image2DMS",
	Image2DMSArray: "image2DMSArray",

	IImage1D:        "iimage1D",
	IImage2D:        "iimage2D",
	IImage3D:        "iimage3D",
	IImage2DRect:    "iimage2DRect",
	IImageCube:      "iimageCube",
	IImageBuffer:    "iimageBuffer",
	IImage1DArray:   "iimage1DArray",
	IImage2DArray:   "iimage2DArray",
	IImage2DMS:      "iimage2DMS",
	IImage2DMSArray: "iimage2DMSArray",

	UImage1D:        "uimage1D",
	UImage2D:        "uimage2D",
	UImage3D:        "uimage3D",
	UImage2DRect:    "uimage2DRect",
	UImageCube:      "uimageCube",
	UImageBuffer:    "uimageBuffer",
	UImage1DArray:   "uimage1DArray",
	UImage2DArray:   "uimage2DArray",
	UImage2DMS:      "uimage2DMS",
	UImage2DMSArray: "uimage2DMSArray",

	AtomicUInt: "atomic_uint",
}

// elementCounts covers the subset of types usable as vertex attributes.
// Scalars count 1, vectors their length, matrices their full element count.
var elementCounts = map[Type]int{
	Float: 1,
	Vec2:  2,
	Vec3:  3,
	Vec4:  4,
	Mat2:  4,
	Mat3:  9,
	Mat4:  16,

	Int:   1,
	IVec2: 2,
	IVec3: 3,
	IVec4: 4,

	UInt:  1,
	UVec2: 2,
	UVec3: 3,
	UVec4: 4,
}

var elementTypes = map[Type]Type{
	Float: Float,
	Vec2:  Float,
	Vec3:  Float,
	Vec4:  Float,
	Mat2:  Float,
	Mat3:  Float,
	Mat4:  Float,

	Int:   Int,
	IVec2: Int,
	IVec3: Int,
	IVec4: Int,

	UInt:  UInt,
	UVec2: UInt,
	UVec3: UInt,
	UVec4: UInt,
}

// Name returns the GLSL name of the type, or ErrUnknownType for values
// that are not part of the table.
func (t Type) Name() (string, error) {
	name, ok := typeNames[t]
	if !ok {
		return "", fmt.Errorf("%w: 0x%04X", ErrUnknownType, uint32(t))
	}
	return name, nil
}

// String returns the GLSL name of the type. Unlike Name it never fails,
// so it is safe to use in error messages for unrecognized values.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(0x%04X)", uint32(t))
}

// Count returns the number of elements in the type: 1 for scalars, the
// vector length for vectors and the full element count for matrices.
// Only types usable as vertex attributes are supported.
func (t Type) Count() (int, error) {
	n, ok := elementCounts[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return n, nil
}

// Element returns the base element type of a compound type: Float, Int or
// UInt. Only types usable as vertex attributes are supported.
func (t Type) Element() (Type, error) {
	e, ok := elementTypes[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return e, nil
}

// GL returns the native enum value for use in driver calls.
func (t Type) GL() uint32 { return uint32(t) }
