// Package shader carries the Mandelbrot pixel programs and the uniform set
// they read.
//
// Two renditions exist: a Kage program for the ebiten backend and a GLSL
// vertex/fragment pair for the OpenGL backend. Both implement the same
// escape-time colouring and take the same uniforms.
package shader

import (
	_ "embed"

	"mandelview/viewport"
)

//go:embed mandelbrot.kage
var Kage []byte

//go:embed mandelbrot.vert
var Vertex string

//go:embed mandelbrot.frag
var Fragment string

// Uniform names as declared in the GLSL program.
const (
	NameResolution    = "resolution"
	NameAngle         = "angle"
	NameScale         = "scale"
	NameOffset        = "offset"
	NameCycles        = "cycles"
	NameBrightnessDiv = "brightness_div"
)

// Names lists every uniform in upload order.
var Names = []string{NameResolution, NameAngle, NameScale, NameOffset, NameCycles, NameBrightnessDiv}

// kageNames maps GLSL uniform names to the exported Kage variables.
var kageNames = map[string]string{
	NameResolution:    "Resolution",
	NameAngle:         "Angle",
	NameScale:         "Scale",
	NameOffset:        "Offset",
	NameCycles:        "Cycles",
	NameBrightnessDiv: "BrightnessDiv",
}

// QuadStrip is the full-screen quad as a 4-vertex triangle strip:
// top left, top right, bottom left, bottom right.
var QuadStrip = []float32{
	-1, 1,
	1, 1,
	-1, -1,
	1, -1,
}

// Uniforms is one frame worth of shader inputs.
type Uniforms struct {
	Resolution    [2]float32
	Angle         float32
	Scale         float32
	Offset        [2]float32
	Cycles        int32
	BrightnessDiv float32
}

// FromFrame converts a resolved viewport frame for a w x h target.
func FromFrame(f viewport.Frame, w, h int) Uniforms {
	return Uniforms{
		Resolution:    [2]float32{float32(w), float32(h)},
		Angle:         float32(f.AngleRad),
		Scale:         float32(f.Scale),
		Offset:        [2]float32{float32(f.Offset.X), float32(f.Offset.Y)},
		Cycles:        int32(f.Cycles),
		BrightnessDiv: float32(f.BrightnessDiv),
	}
}

// Value returns the uniform called name, as a float32 or []float32 for
// vectors and an int32 for cycles.
func (u Uniforms) Value(name string) (any, bool) {
	switch name {
	case NameResolution:
		return u.Resolution[:], true
	case NameAngle:
		return u.Angle, true
	case NameScale:
		return u.Scale, true
	case NameOffset:
		return u.Offset[:], true
	case NameCycles:
		return u.Cycles, true
	case NameBrightnessDiv:
		return u.BrightnessDiv, true
	}
	return nil, false
}

// KageMap returns the uniforms keyed by Kage variable name. Kage has no
// integer loop bound, so cycles travels as a float.
func (u Uniforms) KageMap() map[string]any {
	m := make(map[string]any, len(Names))
	for _, name := range Names {
		v, _ := u.Value(name)
		if name == NameCycles {
			v = float32(u.Cycles)
		}
		m[kageNames[name]] = v
	}
	return m
}
