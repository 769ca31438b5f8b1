package hal

import "testing"

func TestParseScript(t *testing.T) {
	got, err := ParseScript("down*3, release,idle,LEFT,quit")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("len=%d, want 7 ticks", len(got))
	}
	for i := 0; i < 3; i++ {
		if len(got[i]) != 1 || got[i][0] != (Event{Kind: EventKey, Code: KeyDown, Press: true}) {
			t.Fatalf("tick %d = %+v, want down press", i, got[i])
		}
	}
	if ev := got[3][0]; ev.Kind != EventKey || ev.Press {
		t.Fatalf("tick 3 = %+v, want release", ev)
	}
	if len(got[4]) != 0 {
		t.Fatalf("idle tick carries %+v", got[4])
	}
	if ev := got[5][0]; ev.Code != KeyLeft || !ev.Press {
		t.Fatalf("tick 5 = %+v, want left press", ev)
	}
	if got[6][0].Kind != EventQuit {
		t.Fatalf("tick 6 = %+v, want quit", got[6])
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"jump", "down*0", "down*x", "unknown"} {
		if _, err := ParseScript(s); err == nil {
			t.Fatalf("ParseScript(%q) succeeded", s)
		}
	}
	got, err := ParseScript("")
	if err != nil || len(got) != 0 {
		t.Fatalf("empty script = %v, %v", got, err)
	}
}
