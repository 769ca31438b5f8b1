//go:build glfw && cgo

package hal

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"mandelview/shader"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWAvailable reports whether the OpenGL backend was compiled in.
const GLFWAvailable = true

var glfwKeys = map[glfw.Key]KeyCode{
	glfw.KeyUp:    KeyUp,
	glfw.KeyDown:  KeyDown,
	glfw.KeyLeft:  KeyLeft,
	glfw.KeyRight: KeyRight,
	glfw.KeyA:     KeyA,
	glfw.KeyD:     KeyD,
	glfw.KeyW:     KeyW,
	glfw.KeyS:     KeyS,
	glfw.KeyZ:     KeyZ,
	glfw.KeyX:     KeyX,
	glfw.KeySpace: KeySpace,
}

// RunGLFW opens an OpenGL 4.1 window, compiles the GLSL program and paces
// the step function at cfg.TPS. Held keys repeat through the platform's own
// key repeat. It blocks until the window closes.
func RunGLFW(cfg WindowConfig, newApp func(HAL) func() error) error {
	cfg.defaults()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	r, err := newGLRenderer(win)
	if err != nil {
		return err
	}
	defer r.release()

	h := &glfwHAL{kbd: newGLFWKeyboard(win), r: r}
	step := newApp(h)

	t := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer t.Stop()
	for range t.C {
		glfw.PollEvents()
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

type glfwHAL struct {
	kbd *glfwKeyboard
	r   *glRenderer
}

func (h *glfwHAL) Input() Input       { return h.kbd }
func (h *glfwHAL) Renderer() Renderer { return h.r }

type glfwKeyboard struct {
	ch chan Event
}

func newGLFWKeyboard(win *glfw.Window) *glfwKeyboard {
	k := &glfwKeyboard{ch: make(chan Event, 64)}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		code := glfwKeys[key] // KeyUnknown when unmapped
		if ev, ok := keyEvent(code, action != glfw.Release); ok {
			emit(k.ch, ev)
		}
	})
	win.SetCloseCallback(func(*glfw.Window) {
		emit(k.ch, Event{Kind: EventQuit})
	})
	return k
}

func (k *glfwKeyboard) Events() <-chan Event { return k.ch }

type glRenderer struct {
	win      *glfw.Window
	program  uint32
	vao      uint32
	vbo      uint32
	uniforms map[string]int32
}

func newGLRenderer(win *glfw.Window) (*glRenderer, error) {
	program, err := linkProgram(shader.Vertex, shader.Fragment)
	if err != nil {
		return nil, err
	}
	r := &glRenderer{win: win, program: program, uniforms: make(map[string]int32, len(shader.Names))}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(shader.QuadStrip)*4, gl.Ptr(shader.QuadStrip), gl.STATIC_DRAW)

	vert := uint32(gl.GetAttribLocation(program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(vert)
	gl.VertexAttribPointer(vert, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	for _, name := range shader.Names {
		r.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return r, nil
}

func (r *glRenderer) Size() (int, int) { return r.win.GetFramebufferSize() }

func (r *glRenderer) Clear() {
	w, h := r.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *glRenderer) Draw(u shader.Uniforms) error {
	gl.UseProgram(r.program)
	for _, name := range shader.Names {
		loc := r.uniforms[name]
		if loc < 0 {
			continue
		}
		v, _ := u.Value(name)
		switch v := v.(type) {
		case float32:
			gl.Uniform1f(loc, v)
		case int32:
			gl.Uniform1i(loc, v)
		case []float32:
			gl.Uniform2f(loc, v[0], v[1])
		}
	}
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("draw: gl error 0x%x", e)
	}
	return nil
}

func (r *glRenderer) Present() error {
	r.win.SwapBuffers()
	return nil
}

func (r *glRenderer) SetTitle(title string) { r.win.SetTitle(title) }

func (r *glRenderer) release() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}
