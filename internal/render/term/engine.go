package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
)

// DefaultTick matches the 60 updates per second of the windowed backend.
const DefaultTick = time.Second / 60

// TermEngine implements the Engine interface on a tcell screen.
type TermEngine struct {
	screen tcell.Screen
	input  *TermInputManager
	tick   time.Duration
	title  string
	log    *logrus.Entry

	// Ticks, when positive, ends RunGame after that many updates.
	Ticks int
}

// NewEngine creates a terminal engine that feeds key events to input.
func NewEngine(screen tcell.Screen, input *TermInputManager) *TermEngine {
	return &TermEngine{
		screen: screen,
		input:  input,
		tick:   DefaultTick,
		log:    logger.For("term"),
	}
}

// NewBackend opens the terminal and returns its renderer, input and engine.
func NewBackend() (render.Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return render.Backend{}, fmt.Errorf("failed to open terminal: %w", err)
	}
	input := NewInputManager()
	return render.Backend{
		Renderer: NewRenderer(),
		Input:    input,
		Engine:   NewEngine(screen, input),
	}, nil
}

// SetWindowSize is a no-op: the terminal decides its own size.
func (e *TermEngine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the text shown on the bottom row.
func (e *TermEngine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op: terminals are always resizable.
func (e *TermEngine) SetWindowResizable(resizable bool) {}

// SetTick changes the update interval.
func (e *TermEngine) SetTick(d time.Duration) {
	if d > 0 {
		e.tick = d
	}
}

// RunGame initialises the screen and runs the update/draw loop until the game
// returns an error, Ctrl+C is pressed, or Ticks updates have run.
func (e *TermEngine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer e.screen.Fini()

	e.screen.HideCursor()
	e.screen.Clear()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for n := 0; e.Ticks <= 0 || n < e.Ticks; {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				e.input.HandleKey(ev, time.Now())
			case *tcell.EventResize:
				e.screen.Sync()
			}

		case now := <-ticker.C:
			n++
			e.input.BeginFrame(now)
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}
			e.draw(game)
		}
	}
	e.log.WithField("ticks", e.Ticks).Debug("tick limit reached")
	return nil
}

func (e *TermEngine) draw(game render.Game) {
	cols, rows := e.screen.Size()
	width, height := game.Layout(cols, rows)

	e.screen.Clear()
	img := NewImage(e.screen, width, height)
	game.Draw(img)

	if e.title != "" {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		for i, ch := range []rune(e.title) {
			if i >= cols {
				break
			}
			e.screen.SetContent(i, rows-1, ch, nil, style)
		}
	}
	e.screen.Show()
}
