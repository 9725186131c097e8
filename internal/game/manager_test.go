package game

import (
	"errors"
	"testing"

	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

func testMaps() []MapSource {
	return []MapSource{
		{ID: "classic", Load: func() (*grid.Grid, error) { return grid.Classic(), nil }},
		{ID: "box", Load: func() (*grid.Grid, error) { return grid.Bordered(5, 7, 16) }},
	}
}

func TestManagerCyclesMaps(t *testing.T) {
	in := newFakeInput()
	m, err := NewManager(testMaps(), defaultOptions(), &fakeRenderer{}, in)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if m.Current != 0 || m.Game.Grid.Rows() != 11 {
		t.Fatalf("expected the classic map first")
	}

	in.press(render.KeySpace)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	in.endFrame()
	if m.Current != 1 || m.Game.Grid.Rows() != 5 {
		t.Fatalf("Space did not switch maps, current = %d", m.Current)
	}
	if w, h := m.Layout(0, 0); w != 7*16 || h != 5*16 {
		t.Errorf("Layout = %dx%d", w, h)
	}

	in.press(render.KeySpace)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	if m.Current != 0 {
		t.Errorf("maps should wrap around, current = %d", m.Current)
	}
}

func TestManagerKeepsMapWhenSwitchFails(t *testing.T) {
	maps := testMaps()
	maps[1].Load = func() (*grid.Grid, error) { return nil, errors.New("corrupt") }

	in := newFakeInput()
	m, err := NewManager(maps, defaultOptions(), &fakeRenderer{}, in)
	if err != nil {
		t.Fatal(err)
	}
	first := m.Game

	in.press(render.KeySpace)
	if err := m.Update(); err != nil {
		t.Fatalf("a failed switch should not stop the game: %v", err)
	}
	if m.Current != 0 || m.Game != first {
		t.Error("current game replaced by a failed load")
	}
}

func TestNewManagerErrors(t *testing.T) {
	if _, err := NewManager(nil, defaultOptions(), &fakeRenderer{}, newFakeInput()); err == nil {
		t.Error("expected error with no maps")
	}

	maps := testMaps()
	maps[0].Load = func() (*grid.Grid, error) { return nil, errors.New("corrupt") }
	if _, err := NewManager(maps, defaultOptions(), &fakeRenderer{}, newFakeInput()); err == nil {
		t.Error("expected error when the first map fails")
	}
}
