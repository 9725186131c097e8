package game

import (
	"errors"
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/entity/player"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// fakeInput holds key state for one frame at a time.
type fakeInput struct {
	held, pressed, released map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		held:     make(map[render.Key]bool),
		pressed:  make(map[render.Key]bool),
		released: make(map[render.Key]bool),
	}
}

func (f *fakeInput) press(k render.Key) {
	f.held[k] = true
	f.pressed[k] = true
}

func (f *fakeInput) release(k render.Key) {
	delete(f.held, k)
	f.released[k] = true
}

func (f *fakeInput) endFrame() {
	clear(f.pressed)
	clear(f.released)
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool      { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool  { return f.pressed[k] }
func (f *fakeInput) IsKeyJustReleased(k render.Key) bool { return f.released[k] }

type drawOp struct {
	kind string
	clr  color.Color
}

// fakeRenderer records draw calls in order.
type fakeRenderer struct {
	ops []drawOp
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.ops = append(r.ops, drawOp{"FillRect", clr})
}

func (r *fakeRenderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {
	r.ops = append(r.ops, drawOp{"StrokeRect", clr})
}

func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, sw float32, clr color.Color) {
	r.ops = append(r.ops, drawOp{"StrokeLine", clr})
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.ops = append(r.ops, drawOp{"FillCircle", clr})
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.ops = append(r.ops, drawOp{"DrawText", clr})
}

func (r *fakeRenderer) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

type fakeImage struct{ w, h int }

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)        { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)        {}
func (i *fakeImage) Clear()                  {}

func defaultOptions() Options {
	return Options{
		FOV:      math.Pi / 3,
		RayCount: 16,
		Workers:  1,
		Player: player.Settings{
			MoveSpeed:     2,
			RotationSpeed: 0.5 * math.Pi / 180,
			Radius:        3,
		},
		Scale: 1,
	}
}

func newTestGame(t *testing.T, opts Options) (*Game, *fakeRenderer, *fakeInput) {
	t.Helper()
	r := &fakeRenderer{}
	in := newFakeInput()
	g, err := New(grid.Classic(), opts, r, in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, r, in
}

func TestTickMovesThenCasts(t *testing.T) {
	g, _, _ := newTestGame(t, defaultOptions())

	frame, err := g.Tick(player.Intent{Walk: 1})
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if frame.Tick != 1 {
		t.Errorf("Tick = %d, want 1", frame.Tick)
	}
	if math.Abs(frame.Pose.X-240) > 1e-9 || math.Abs(frame.Pose.Y-178) > 1e-9 {
		t.Errorf("pose = (%v, %v), want (240, 178)", frame.Pose.X, frame.Pose.Y)
	}
	if len(frame.Rays) != 16 {
		t.Fatalf("got %d rays, want 16", len(frame.Rays))
	}
	for i, r := range frame.Rays {
		if !r.Hit {
			t.Errorf("ray %d missed inside an enclosed map", i)
		}
	}
	if g.Explored.Size() == 0 {
		t.Error("no walls recorded as explored")
	}
	if !reflect.DeepEqual(g.LastFrame(), frame) {
		t.Error("LastFrame differs from the returned frame")
	}
}

func TestTickClampsIntent(t *testing.T) {
	g, _, _ := newTestGame(t, defaultOptions())

	frame, err := g.Tick(player.Intent{Walk: 5})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(frame.Pose.Y-178) > 1e-9 {
		t.Errorf("y = %v, want one step of 2", frame.Pose.Y)
	}
}

func TestTickDeterministic(t *testing.T) {
	a, _, _ := newTestGame(t, defaultOptions())
	b, _, _ := newTestGame(t, defaultOptions())

	intents := []player.Intent{{Walk: 1}, {Turn: 1, Walk: 1}, {Turn: -1}, {}, {Walk: -1}}
	for _, in := range intents {
		fa, err := a.Tick(in)
		if err != nil {
			t.Fatal(err)
		}
		fb, err := b.Tick(in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(fa, fb) {
			t.Fatalf("frames diverged for intent %+v", in)
		}
	}
}

func TestTickParallelMatchesSequential(t *testing.T) {
	seqOpts := defaultOptions()
	seqOpts.RayCount = 480
	parOpts := seqOpts
	parOpts.Workers = 4

	seq, _, _ := newTestGame(t, seqOpts)
	par, _, _ := newTestGame(t, parOpts)

	for i := 0; i < 20; i++ {
		in := player.Intent{Turn: 1, Walk: 1}
		fs, err := seq.Tick(in)
		if err != nil {
			t.Fatal(err)
		}
		fp, err := par.Tick(in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(fs.Rays, fp.Rays) {
			t.Fatalf("tick %d: parallel rays differ", i)
		}
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	opts := defaultOptions()
	opts.RayCount = 0
	if _, err := New(grid.Classic(), opts, &fakeRenderer{}, newFakeInput()); !errors.Is(err, raycast.ErrBadRayCount) {
		t.Errorf("zero rays: got %v", err)
	}

	walled, err := grid.Bordered(3, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	walled = walled.WithSpawn(grid.Spawn{X: 5, Y: 5})
	if _, err := New(walled, defaultOptions(), &fakeRenderer{}, newFakeInput()); !errors.Is(err, player.ErrSpawnInWall) {
		t.Errorf("spawn in wall: got %v", err)
	}
}

func TestUpdateFollowsKeyEdges(t *testing.T) {
	g, _, in := newTestGame(t, defaultOptions())

	step := func() {
		t.Helper()
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		in.endFrame()
	}

	in.press(render.KeyUp)
	step()
	if y := g.Player.Y; math.Abs(y-178) > 1e-9 {
		t.Fatalf("after press y = %v, want 178", y)
	}

	// held without new edges keeps walking
	step()
	if y := g.Player.Y; math.Abs(y-180) > 1e-9 {
		t.Fatalf("while held y = %v, want 180", y)
	}

	in.release(render.KeyUp)
	step()
	if y := g.Player.Y; math.Abs(y-180) > 1e-9 {
		t.Fatalf("after release y = %v, want 180", y)
	}

	in.press(render.KeyA)
	step()
	want := math.Pi/2 - 0.5*math.Pi/180
	if got := g.Player.RotationAngle; math.Abs(got-want) > 1e-12 {
		t.Fatalf("angle = %v, want %v", got, want)
	}
}

func TestReadIntentReleaseThenPress(t *testing.T) {
	in := newFakeInput()

	// Down released while Up is pressed in the same frame
	in.release(render.KeyDown)
	in.press(render.KeyUp)
	got := readIntent(in, player.Intent{Walk: -1})
	if got.Walk != 1 {
		t.Errorf("Walk = %d, want 1", got.Walk)
	}

	in.endFrame()
	in.press(render.KeyRight)
	got = readIntent(in, got)
	if got.Turn != 1 || got.Walk != 1 {
		t.Errorf("intent = %+v, want turn 1 walk 1", got)
	}

	// releasing the other key of the axis also stops it
	in.endFrame()
	in.release(render.KeyD)
	got = readIntent(in, got)
	if got.Turn != 0 {
		t.Errorf("Turn = %d, want 0", got.Turn)
	}
}

func TestUpdateEscapeQuits(t *testing.T) {
	g, _, in := newTestGame(t, defaultOptions())
	in.press(render.KeyEscape)
	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Fatalf("Update = %v, want ErrQuit", err)
	}
}

func TestDrawOrder(t *testing.T) {
	g, r, _ := newTestGame(t, defaultOptions())
	frame, err := g.Tick(player.Intent{})
	if err != nil {
		t.Fatal(err)
	}

	g.Draw(&fakeImage{480, 352})

	tiles := g.Grid.Rows() * g.Grid.Cols()
	if n := r.count("FillRect"); n != tiles {
		t.Errorf("FillRect calls = %d, want %d", n, tiles)
	}
	if n := r.count("StrokeRect"); n != tiles {
		t.Errorf("StrokeRect calls = %d, want %d", n, tiles)
	}
	if n, want := r.count("StrokeLine"), len(g.Outline)+len(frame.Rays); n != want {
		t.Errorf("StrokeLine calls = %d, want %d", n, want)
	}
	if n := r.count("DrawText"); n != 0 {
		t.Errorf("debug text drawn with Debug off")
	}
	if last := r.ops[len(r.ops)-1]; last.kind != "FillCircle" || last.clr != playerColor {
		t.Errorf("last op = %+v, want the player circle", last)
	}

	tinted := 0
	for _, op := range r.ops {
		if op.kind == "FillRect" && op.clr == exploredWallColor {
			tinted++
		}
	}
	if tinted != g.Explored.Size() {
		t.Errorf("tinted %d tiles, explored %d", tinted, g.Explored.Size())
	}
}

func TestDrawDebugText(t *testing.T) {
	opts := defaultOptions()
	opts.Debug = true
	g, r, _ := newTestGame(t, opts)
	if _, err := g.Tick(player.Intent{}); err != nil {
		t.Fatal(err)
	}
	g.Draw(&fakeImage{480, 352})
	if n := r.count("DrawText"); n != 1 {
		t.Errorf("DrawText calls = %d, want 1", n)
	}
}

func TestLayoutScales(t *testing.T) {
	opts := defaultOptions()
	opts.Scale = 2
	g, _, _ := newTestGame(t, opts)
	if w, h := g.Layout(0, 0); w != 960 || h != 704 {
		t.Errorf("Layout = %dx%d, want 960x704", w, h)
	}
}
