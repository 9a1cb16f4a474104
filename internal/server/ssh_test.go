package server

import (
	"testing"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []Action
	}{
		{"empty", nil, nil},
		{"wasd", []byte("wasd"), []Action{ActionUp, ActionLeft, ActionDown, ActionRight}},
		{"uppercase", []byte("WS"), []Action{ActionUp, ActionDown}},
		{"arrow up", []byte{0x1b, '[', 'A'}, []Action{ActionUp}},
		{"arrow right", []byte{0x1b, '[', 'C'}, []Action{ActionRight}},
		{"zoom", []byte("+-=_"), []Action{ActionZoomIn, ActionZoomOut, ActionZoomIn, ActionZoomOut}},
		{"dimensions", []byte("1234"), []Action{ActionDim1, ActionDim2, ActionDim3, ActionDim4}},
		{"palette and pause", []byte("p "), []Action{ActionPalette, ActionPause}},
		{"quit", []byte("q"), []Action{ActionQuit}},
		{"ctrl-c", []byte{3}, []Action{ActionQuit}},
		{"unknown ignored", []byte("xz9"), nil},
		{"mixed", append([]byte("w"), 0x1b, '[', 'B'), []Action{ActionUp, ActionDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInput(tt.data)
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseInput(%q) = %v, want %v", tt.data, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("ParseInput(%q)[%d] = %v, want %v", tt.data, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestViewApply(t *testing.T) {
	v := newView()
	startScale := v.plane.Scale

	v.apply(ActionZoomIn)
	if v.plane.Scale >= startScale {
		t.Errorf("zoom in did not shrink scale: %v -> %v", startScale, v.plane.Scale)
	}
	v.apply(ActionZoomOut)
	v.apply(ActionZoomOut)
	if v.plane.Scale <= startScale {
		t.Errorf("zoom out did not grow scale past start: %v", v.plane.Scale)
	}

	v.apply(ActionRight)
	if v.plane.OriginX <= 0 {
		t.Errorf("pan right did not move origin: %v", v.plane.OriginX)
	}

	for a, want := range map[Action]int{
		ActionDim1: 1,
		ActionDim2: 2,
		ActionDim4: 4,
		ActionDim3: 3,
	} {
		v.apply(a)
		if v.plane.Dim != want {
			t.Errorf("after %v: dim = %d, want %d", a, v.plane.Dim, want)
		}
	}

	if v.paused {
		t.Fatal("view should start unpaused")
	}
	v.apply(ActionPause)
	if !v.paused {
		t.Error("pause action did not pause")
	}

	if v.palette.Name() != "terrain" {
		t.Fatalf("default palette = %s, want terrain", v.palette.Name())
	}
	v.apply(ActionPalette)
	if v.palette.Name() != "gray" {
		t.Errorf("palette toggle = %s, want gray", v.palette.Name())
	}
}
