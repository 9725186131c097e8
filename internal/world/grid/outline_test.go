package grid

import "testing"

func TestOutlineSingleTile(t *testing.T) {
	g, err := New("one", [][]Cell{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}, 10)
	if err != nil {
		t.Fatal(err)
	}

	segs := g.Outline()
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}
	for _, s := range segs {
		length := s.B.X - s.A.X + s.B.Y - s.A.Y
		if length != 10 {
			t.Errorf("segment %+v has length %v, want 10", s, length)
		}
	}
}

func TestOutlineMergesRow(t *testing.T) {
	g, err := New("row", [][]Cell{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}, 10)
	if err != nil {
		t.Fatal(err)
	}

	segs := g.Outline()
	if len(segs) != 4 {
		t.Fatalf("expected 4 merged segments, got %d: %+v", len(segs), segs)
	}
	for _, s := range segs {
		if s.EdgeType == "top" && (s.A.X != 10 || s.B.X != 40 || s.A.Y != 10) {
			t.Errorf("top edge = %+v, want (10,10)-(40,10)", s)
		}
	}
}

func TestOutlineBorderedRing(t *testing.T) {
	g, err := Bordered(5, 6, 8)
	if err != nil {
		t.Fatal(err)
	}
	if segs := g.Outline(); len(segs) != 8 {
		t.Fatalf("ring should have 4 outer and 4 inner edges, got %d", len(segs))
	}
}

func TestOutlineNoWalls(t *testing.T) {
	g, err := New("open", [][]Cell{{0, 0}, {0, 0}}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if segs := g.Outline(); len(segs) != 0 {
		t.Fatalf("expected no segments, got %d", len(segs))
	}
}
