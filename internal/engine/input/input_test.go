package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateMouse(t *testing.T) {
	in := New()

	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 10, Y: 20, Button: sdl.BUTTON_LEFT})
	in.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 12, Y: 25, XRel: 2, YRel: 5})
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: 12, Y: 25, Button: sdl.BUTTON_LEFT})

	events := in.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Type != EventMouseDown || events[0].Button != ButtonLeft {
		t.Errorf("expected left mouse down, got %+v", events[0])
	}
	if events[1].RelX != 2 || events[1].RelY != 5 {
		t.Errorf("expected relative motion (2,5), got (%d,%d)", events[1].RelX, events[1].RelY)
	}
	if events[2].Type != EventMouseUp || events[2].MouseX != 12 {
		t.Errorf("expected mouse up at x=12, got %+v", events[2])
	}
}

func TestTranslateWheelFlipped(t *testing.T) {
	in := New()
	in.translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED})

	if got := in.Events()[0].Wheel; got != -1 {
		t.Errorf("expected wheel -1, got %f", got)
	}
}

func TestTranslateQuitAndLeave(t *testing.T) {
	in := New()
	if in.translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_LEAVE}) {
		t.Error("leave must not quit")
	}
	if !in.translate(&sdl.QuitEvent{Type: sdl.QUIT}) {
		t.Error("expected quit")
	}
	if in.Events()[0].Type != EventMouseLeave {
		t.Errorf("expected mouse leave event, got %+v", in.Events()[0])
	}
}

func TestCtrlModifier(t *testing.T) {
	e := Event{Type: EventKeyDown, Key: sdl.SCANCODE_Z, Mod: sdl.KMOD_LCTRL}
	if !e.Ctrl() {
		t.Error("expected ctrl to be detected")
	}
	if (Event{Mod: sdl.KMOD_LSHIFT}).Ctrl() {
		t.Error("shift is not ctrl")
	}
}

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_Y}})

	if !in.IsKeyPressed(sdl.SCANCODE_Y) {
		t.Error("expected Y pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_Z) {
		t.Error("expected Z not pressed")
	}
}
