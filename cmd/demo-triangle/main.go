// Spinning triangle: vertex buffers bound through the type-checked
// registry, a matrix uniform updated per frame.
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

const vertexSrc = `#version 410 core
in vec4 a_position;
in vec3 a_colour;
uniform mat4 u_model;
out vec3 v_colour;
void main() {
	v_colour = a_colour;
	gl_Position = u_model * a_position;
}
`

const fragmentSrc = `#version 410 core
in vec3 v_colour;
out vec4 o_colour;
void main() {
	o_colour = vec4(v_colour, 1.0);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := glfw.Init(); err != nil {
		log.Error("glfw init", "err", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(800, 600, "gokgl triangle", nil, nil)
	if err != nil {
		log.Error("create window", "err", err)
		os.Exit(1)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Error("gl init", "err", err)
		os.Exit(1)
	}

	buffers := glbuf.New(log)
	shader, err := glshader.New(glshader.Config{Buffers: buffers, Logger: log}, vertexSrc, fragmentSrc)
	if err != nil {
		log.Error("build shader", "err", err)
		os.Exit(1)
	}
	defer shader.Close()

	positions, err := buffers.CreateVec4([]mgl32.Vec4{
		{0, 0.8, 0, 1},
		{-0.8, -0.8, 0, 1},
		{0.8, -0.8, 0, 1},
	})
	if err != nil {
		log.Error("create position buffer", "err", err)
		os.Exit(1)
	}
	colours, err := buffers.CreateVec3([]mgl32.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	if err != nil {
		log.Error("create colour buffer", "err", err)
		os.Exit(1)
	}

	var fail = func(err error) {
		if err != nil {
			log.Error("draw", "err", err)
			os.Exit(1)
		}
	}

	for !window.ShouldClose() {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.Use()
		fail(shader.SetAttribute("a_position", positions))
		fail(shader.SetAttribute("a_colour", colours))
		angle := float32(glfw.GetTime())
		fail(shader.SetUniformMat4("u_model", mgl32.HomogRotate3DZ(angle)))
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
