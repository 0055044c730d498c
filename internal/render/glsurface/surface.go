// Package glsurface draws lines into a GLFW window with OpenGL 4.1 core.
// All calls must come from the thread that opened the surface.
package glsurface

import (
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"wireframe/internal/input"
	"wireframe/internal/projection"
)

// floats per vertex: x, y, r, g, b
const stride = 5

type Options struct {
	Title         string
	Width, Height int
	VSync         bool
}

type Surface struct {
	window *glfw.Window
	title  string

	program  uint32
	vao, vbo uint32
	viewport int32

	width, height int
	batch         []float32

	lastFpsTime float64
	frameCount  int
	fps         int
}

// Open initializes GLFW, creates a resizable window and compiles the line
// program. Close releases everything.
func Open(opts Options) (*Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	s := &Surface{window: window, title: opts.Title, lastFpsTime: glfw.GetTime()}
	s.width, s.height = window.GetSize()
	window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		s.width, s.height = width, height
	})

	if err := s.setup(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	return s, nil
}

func (s *Surface) setup() error {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	s.program = program
	gl.UseProgram(program)
	s.viewport = gl.GetUniformLocation(program, gl.Str("viewport\x00"))

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride*4, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 3, gl.FLOAT, false, stride*4, gl.PtrOffset(2*4))

	return checkError("setup")
}

// Size is the window size in screen coordinates, as last reported by the
// resize callback.
func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Clear(c color.RGBA) error {
	fbWidth, fbHeight := s.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.batch = s.batch[:0]
	return checkError("clear")
}

// DrawLine queues a line; the batch is flushed by Present.
func (s *Surface) DrawLine(a, b projection.Point, c color.RGBA) error {
	r, g, bl := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	s.batch = append(s.batch,
		float32(a.X), float32(a.Y), r, g, bl,
		float32(b.X), float32(b.Y), r, g, bl,
	)
	return nil
}

// Present draws the queued lines and swaps buffers.
func (s *Surface) Present() error {
	if len(s.batch) > 0 {
		gl.UseProgram(s.program)
		gl.Uniform2f(s.viewport, float32(s.width), float32(s.height))
		gl.BindVertexArray(s.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(s.batch)*4, gl.Ptr(s.batch), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.LINES, 0, int32(len(s.batch)/stride))
		s.batch = s.batch[:0]
		if err := checkError("draw lines"); err != nil {
			return err
		}
	}
	s.window.SwapBuffers()
	s.countFrame()
	return nil
}

func (s *Surface) countFrame() {
	s.frameCount++
	now := glfw.GetTime()
	if now-s.lastFpsTime >= 1.0 {
		s.fps = s.frameCount
		s.window.SetTitle(fmt.Sprintf("%s | FPS: %d", s.title, s.fps))
		s.frameCount = 0
		s.lastFpsTime = now
	}
}

// FPS is the frame rate measured over the last full second.
func (s *Surface) FPS() int { return s.fps }

// Poll processes pending window events and returns the held commands.
func (s *Surface) Poll(keys map[input.Command]glfw.Key) input.Set {
	glfw.PollEvents()
	return input.Sample(keys, func(k glfw.Key) bool {
		return s.window.GetKey(k) == glfw.Press
	})
}

func (s *Surface) ShouldClose() bool { return s.window.ShouldClose() }

func (s *Surface) Close() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
	s.window.Destroy()
	glfw.Terminate()
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl %s: error 0x%x", op, code)
	}
	return nil
}
