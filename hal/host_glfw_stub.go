//go:build !glfw || !cgo

package hal

import "errors"

// GLFWAvailable reports whether the OpenGL backend was compiled in.
const GLFWAvailable = false

func RunGLFW(_ WindowConfig, _ func(h HAL) func() error) error {
	return errors.New("glfw backend not built (build with -tags glfw and CGO_ENABLED=1)")
}
