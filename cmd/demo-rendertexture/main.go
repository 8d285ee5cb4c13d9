// Render-to-texture: a spinning quad is drawn into an offscreen colour
// and depth texture pair, then composited to the screen with a sampler
// uniform and an index buffer.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/gokgl/pkg/glbuf"
	"github.com/kjkrol/gokgl/pkg/glshader"
)

const sceneVertexSrc = `#version 410 core
in vec4 a_position;
uniform mat4 u_model;
void main() {
	gl_Position = u_model * a_position;
}
`

const sceneFragmentSrc = `#version 410 core
uniform vec3 u_colour;
out vec4 o_colour;
void main() {
	o_colour = vec4(u_colour, 1.0);
}
`

const screenVertexSrc = `#version 410 core
in vec2 a_position;
out vec2 v_uv;
void main() {
	v_uv = a_position * 0.5 + 0.5;
	gl_Position = vec4(a_position, 0.0, 1.0);
}
`

const screenFragmentSrc = `#version 410 core
uniform sampler2D u_texture;
in vec2 v_uv;
out vec4 o_colour;
void main() {
	o_colour = texture(u_texture, v_uv);
}
`

const texSize = 512

func init() {
	runtime.LockOSThread()
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fail := func(err error) {
		if err != nil {
			log.Error("demo-rendertexture", "err", err)
			os.Exit(1)
		}
	}

	fail(glfw.Init())
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(800, 600, "gokgl render texture", nil, nil)
	fail(err)
	window.MakeContextCurrent()
	fail(gl.Init())

	buffers := glbuf.New(log)
	cfg := glshader.Config{Buffers: buffers, Logger: log}

	scene, err := glshader.New(cfg, sceneVertexSrc, sceneFragmentSrc)
	fail(err)
	defer scene.Close()
	screen, err := glshader.New(cfg, screenVertexSrc, screenFragmentSrc)
	fail(err)
	defer screen.Close()

	quad, err := buffers.CreateVec4([]mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0.5, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	})
	fail(err)
	fullscreen, err := buffers.CreateVec2([]mgl32.Vec2{
		{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
	})
	fail(err)
	indices, err := buffers.CreateIndex([]uint32{0, 1, 2, 0, 2, 3})
	fail(err)

	colourTex, err := glshader.NewRenderTexture(texSize, texSize)
	fail(err)
	depthTex, err := glshader.NewDepthTexture(texSize, texSize)
	fail(err)
	framebuffer, err := glshader.NewFrameBufferWith(colourTex, depthTex)
	fail(err)

	for !window.ShouldClose() {
		// offscreen pass
		gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)
		gl.Viewport(0, 0, texSize, texSize)
		gl.Enable(gl.DEPTH_TEST)
		gl.ClearColor(0.1, 0.1, 0.2, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		scene.Use()
		fail(scene.SetAttribute("a_position", quad))
		fail(scene.SetUniformVec3("u_colour", mgl32.Vec3{1, 0.6, 0}))
		angle := float32(glfw.GetTime())
		fail(scene.SetUniformMat4("u_model", mgl32.HomogRotate3DZ(angle)))
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))

		// composite pass
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		width, height := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.Disable(gl.DEPTH_TEST)
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		screen.Use()
		fail(screen.SetAttribute("a_position", fullscreen))
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, colourTex)
		fail(screen.SetUniformInt("u_texture", 0))
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
