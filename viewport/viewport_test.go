package viewport

import (
	"math"
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

var allKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyD, KeyW, KeyS, KeyZ, KeyX, KeySpace}

func TestNewLaunchState(t *testing.T) {
	c := New(Rich, 0)
	s := c.State()
	if s.Zoom != MaxZoom || s.Cycles != MaxCycles || s.BrightnessDiv != BrightMax {
		t.Fatalf("rich launch state = %+v", s)
	}

	c = New(Simple, 0)
	s = c.State()
	if s.Cycles != SimpleCycles || s.BrightnessDiv != SimpleBrightnessDiv {
		t.Fatalf("simple launch state = %+v", s)
	}

	if got := New(Rich, 1_000_000).State().Cycles; got != MaxCycles {
		t.Fatalf("cycles=%d, want clamp to %d", got, MaxCycles)
	}
	if got := New(Rich, 42).State().Cycles; got != 42 {
		t.Fatalf("cycles=%d, want 42", got)
	}
}

func TestSpeedsStayClamped(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	c := New(Rich, 0)
	for i := 0; i < 200000; i++ {
		// Bias towards the speed keys so the bounds are actually reached.
		var k Key
		switch n := r.IntN(10); {
		case n < 3:
			k = KeyLeft
		case n < 5:
			k = KeyDown
		case n < 6:
			k = KeyRight
		case n < 7:
			k = KeyUp
		default:
			k = allKeys[r.IntN(len(allKeys)-1)] // never space
		}
		c.KeyDown(k)
		s := c.State()
		if s.AngularSpeed < -MaxSpeed || s.AngularSpeed > MaxSpeed {
			t.Fatalf("step %d: angular speed %v out of range", i, s.AngularSpeed)
		}
		if s.ZoomSpeed < -MaxZoomSpeed || s.ZoomSpeed > MaxZoomSpeed {
			t.Fatalf("step %d: zoom speed %v out of range", i, s.ZoomSpeed)
		}
		if s.BrightnessDiv < BrightMin || s.BrightnessDiv > BrightMax {
			t.Fatalf("step %d: brightness %v out of range", i, s.BrightnessDiv)
		}
	}
}

func TestAngularSpeedSaturates(t *testing.T) {
	c := New(Rich, 0)
	for i := 0; i < 1000; i++ {
		c.KeyDown(KeyLeft)
	}
	if got := c.State().AngularSpeed; got != MaxSpeed {
		t.Fatalf("angular speed=%v, want %v", got, MaxSpeed)
	}
	for i := 0; i < 2000; i++ {
		c.KeyDown(KeyRight)
	}
	if got := c.State().AngularSpeed; got != -MaxSpeed {
		t.Fatalf("angular speed=%v, want %v", got, -MaxSpeed)
	}
}

func TestZoomStaysInsideAfterTick(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	c := New(Rich, 0)
	for i := 0; i < 20000; i++ {
		switch r.IntN(8) {
		case 0:
			c.KeyUp(KeyNone)
		case 1, 2, 3:
			c.KeyDown(KeyUp)
		default:
			c.KeyDown(KeyDown)
		}
		f := c.Tick()
		if !(f.Scale > MinZoom && f.Scale < MaxZoom) {
			t.Fatalf("step %d: zoom %v escaped (%v, %v)", i, f.Scale, MinZoom, MaxZoom)
		}
	}
}

func TestZoomFloorBounce(t *testing.T) {
	c := New(Rich, 0)
	c.st.Zoom = 0.001
	for i := 0; i < 200; i++ {
		c.KeyDown(KeyUp)
	}
	c.Tick()
	s := c.State()
	if s.ZoomSpeed != 0 {
		t.Fatalf("zoom speed=%v, want 0", s.ZoomSpeed)
	}
	if want := MinZoom + MinZoom/10; s.Zoom != want {
		t.Fatalf("zoom=%v, want %v", s.Zoom, want)
	}
}

func TestZoomCeilingBounce(t *testing.T) {
	c := New(Rich, 0)
	for i := 0; i < 5; i++ {
		c.KeyDown(KeyDown)
	}
	if got := c.State().ZoomSpeed; !near(got, 0.05) {
		t.Fatalf("zoom speed=%v, want 0.05", got)
	}
	c.Tick()
	s := c.State()
	if s.Zoom != MaxZoom-MinZoom {
		t.Fatalf("zoom=%v, want %v", s.Zoom, MaxZoom-MinZoom)
	}
	if s.ZoomSpeed != 0 {
		t.Fatalf("zoom speed=%v, want 0", s.ZoomSpeed)
	}
}

func TestZoomIsMultiplicative(t *testing.T) {
	c := New(Rich, 0)
	c.st.Zoom = 1
	c.KeyDown(KeyUp) // -0.01
	c.Tick()
	c.Tick()
	if got, want := c.State().Zoom, 0.99*0.99; !near(got, want) {
		t.Fatalf("zoom=%v, want %v", got, want)
	}
}

func TestKeyUpIdempotent(t *testing.T) {
	c := New(Rich, 0)
	for _, k := range []Key{KeyLeft, KeyLeft, KeyDown, KeyA, KeyW, KeyZ} {
		c.KeyDown(k)
	}
	if !c.KeyUp(unknownKey) {
		t.Fatal("KeyUp should request a redraw")
	}
	once := c.State()
	c.KeyUp(KeyLeft)
	twice := c.State()
	if once != twice {
		t.Fatalf("second KeyUp changed state: %+v -> %+v", once, twice)
	}
	if once.AngularSpeed != 0 || once.ZoomSpeed != 0 || once.Pan != (Vec2{}) {
		t.Fatalf("velocities not zeroed: %+v", once)
	}
	if once.BrightnessDiv != BrightMax {
		t.Fatalf("KeyUp touched brightness: %v", once.BrightnessDiv)
	}
}

// unknownKey stands in for any key the controller does not know.
const unknownKey Key = 200

func TestSpaceResets(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 50; trial++ {
		c := New(Rich, 0)
		for i := 0; i < r.IntN(500); i++ {
			c.KeyDown(allKeys[r.IntN(len(allKeys)-1)])
			if r.IntN(3) == 0 {
				c.Tick()
			}
		}
		c.KeyDown(KeySpace)
		want := State{
			Zoom:          MaxZoom,
			Cycles:        MaxCycles,
			BrightnessDiv: BrightMax,
		}
		if got := c.State(); got != want {
			t.Fatalf("trial %d: state after space = %+v, want %+v", trial, got, want)
		}
	}
}

func TestPanFollowsRotation(t *testing.T) {
	delta := func(angle float64) Vec2 {
		c := New(Rich, 0)
		c.st.Angle = angle
		c.st.Pan = Vec2{X: 5}
		before := c.State().Center
		c.Tick()
		after := c.State().Center
		return Vec2{X: after.X - before.X, Y: after.Y - before.Y}
	}

	d0 := delta(0)
	d90 := delta(90)
	if dot := d0.X*d90.X + d0.Y*d90.Y; math.Abs(dot) > 1e-9 {
		t.Fatalf("deltas not perpendicular: %+v %+v", d0, d90)
	}
	if !near(math.Hypot(d0.X, d0.Y), math.Hypot(d90.X, d90.Y)) {
		t.Fatalf("delta lengths differ: %+v %+v", d0, d90)
	}
	// Counter-rotation: screen +x maps to world -y at 90 degrees.
	if !(d90.Y < 0) || !near(d0.X, 5*MaxZoom) {
		t.Fatalf("unexpected deltas: %+v %+v", d0, d90)
	}
}

func TestLeftThenTick(t *testing.T) {
	c := New(Rich, 0)
	c.KeyDown(KeyLeft)
	if got := c.State().AngularSpeed; got != 0.5 {
		t.Fatalf("angular speed=%v, want 0.5", got)
	}
	f := c.Tick()
	if got := c.State().Angle; got != 0.5 {
		t.Fatalf("angle=%v, want 0.5", got)
	}
	if math.Abs(f.AngleRad-0.008727) > 1e-6 {
		t.Fatalf("angle rad=%v, want ~0.008727", f.AngleRad)
	}
}

func TestKeyPolarity(t *testing.T) {
	cases := []struct {
		key  Key
		want func(State) bool
	}{
		{KeyDown, func(s State) bool { return s.ZoomSpeed > 0 }},
		{KeyUp, func(s State) bool { return s.ZoomSpeed < 0 }},
		{KeyLeft, func(s State) bool { return s.AngularSpeed > 0 }},
		{KeyRight, func(s State) bool { return s.AngularSpeed < 0 }},
		{KeyA, func(s State) bool { return s.Pan.X == -5 }},
		{KeyD, func(s State) bool { return s.Pan.X == 5 }},
		{KeyW, func(s State) bool { return s.Pan.Y == 5 }},
		{KeyS, func(s State) bool { return s.Pan.Y == -5 }},
		{KeyX, func(s State) bool { return s.BrightnessDiv == BrightMax-10 }},
		{KeyZ, func(s State) bool { return s.BrightnessDiv == BrightMax }},
	}
	for _, tc := range cases {
		c := New(Rich, 0)
		if !c.KeyDown(tc.key) {
			t.Fatalf("%s: not handled", tc.key)
		}
		if !tc.want(c.State()) {
			t.Fatalf("%s: unexpected state %+v", tc.key, c.State())
		}
	}
}

func TestSimpleVariantIgnoresBrightness(t *testing.T) {
	c := New(Simple, 0)
	if c.KeyDown(KeyZ) || c.KeyDown(KeyX) {
		t.Fatal("brightness keys should be ignored in the simple variant")
	}
	c.KeyDown(KeySpace)
	if got := c.State().BrightnessDiv; got != SimpleBrightnessDiv {
		t.Fatalf("brightness after reset=%v, want %v", got, SimpleBrightnessDiv)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	c := New(Rich, 0)
	before := c.State()
	if c.KeyDown(KeyNone) || c.KeyDown(unknownKey) {
		t.Fatal("unknown keys should not request a redraw")
	}
	if c.State() != before {
		t.Fatal("unknown key changed state")
	}
}

func TestParseKey(t *testing.T) {
	for _, k := range allKeys {
		got, ok := ParseKey(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKey(%q)=%v,%v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKey("none"); ok {
		t.Fatal("none should not parse")
	}
}

func TestRestore(t *testing.T) {
	c := New(Rich, 0)
	c.KeyDown(KeyLeft)
	c.KeyDown(KeyD)
	saved := c.State()
	c.Tick()
	if c.State() == saved {
		t.Fatal("Tick did not change state")
	}
	c.Restore(saved)
	if c.State() != saved {
		t.Fatalf("Restore: %+v, want %+v", c.State(), saved)
	}
}
