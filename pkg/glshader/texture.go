package glshader

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/kjkrol/gokgl/internal/glerr"
)

// NewRenderTexture creates an RGBA texture suitable as a framebuffer
// colour attachment. Filtering is nearest, wrapping clamps to edge.
func NewRenderTexture(width, height int) (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	if err := glerr.Check(); err != nil {
		return 0, fmt.Errorf("render texture %dx%d: %w", width, height, err)
	}
	return texture, nil
}

// NewDepthTexture creates a depth-component texture suitable as a
// framebuffer depth attachment.
func NewDepthTexture(width, height int) (uint32, error) {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, int32(width), int32(height), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	if err := glerr.Check(); err != nil {
		return 0, fmt.Errorf("depth texture %dx%d: %w", width, height, err)
	}
	return texture, nil
}

// NewFrameBuffer creates a framebuffer that writes colours to the given
// render texture, with a fresh depth renderbuffer sized to match.
func NewFrameBuffer(renderTexture uint32) (uint32, error) {
	return newFrameBuffer(renderTexture, 0)
}

// NewFrameBufferWith creates a framebuffer with the given colour and
// depth textures attached. Either handle may be 0: a zero colour handle
// leaves the framebuffer without a colour attachment, a zero depth handle
// attaches a fresh depth renderbuffer instead.
func NewFrameBufferWith(colour, depth uint32) (uint32, error) {
	return newFrameBuffer(colour, depth)
}

func newFrameBuffer(colour, depth uint32) (uint32, error) {
	// the depth renderbuffer is sized from whichever texture is attached
	var width, height int32
	ref := colour
	if ref == 0 {
		ref = depth
	}
	if ref != 0 {
		gl.BindTexture(gl.TEXTURE_2D, ref)
		gl.GetTexLevelParameteriv(gl.TEXTURE_2D, 0, gl.TEXTURE_WIDTH, &width)
		gl.GetTexLevelParameteriv(gl.TEXTURE_2D, 0, gl.TEXTURE_HEIGHT, &height)
	}

	var framebuffer uint32
	gl.GenFramebuffers(1, &framebuffer)
	gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)

	drawBuffers := []uint32{gl.COLOR_ATTACHMENT0}
	gl.DrawBuffers(1, &drawBuffers[0])

	if colour == 0 {
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, 0)
	} else {
		gl.FramebufferTexture(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, colour, 0)
	}

	if depth == 0 {
		var renderbuffer uint32
		gl.GenRenderbuffers(1, &renderbuffer)
		gl.BindRenderbuffer(gl.RENDERBUFFER, renderbuffer)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, renderbuffer)
	} else {
		gl.FramebufferTexture(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, depth, 0)
	}

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		if err := glerr.Check(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrFramebuffer, err)
		}
		return 0, ErrFramebuffer
	}
	return framebuffer, nil
}
