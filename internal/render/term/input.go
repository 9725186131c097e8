package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// DefaultHoldWindow is how long a key stays down after its last key event.
// It has to outlast the terminal's auto-repeat delay, or a held key flickers
// between pressed and released.
const DefaultHoldWindow = 500 * time.Millisecond

// TermInputManager implements the InputManager interface from tcell key
// events. Terminals report presses and auto-repeats but never releases, so
// a key counts as held until HoldWindow passes without another event for it.
type TermInputManager struct {
	HoldWindow time.Duration

	mu        sync.Mutex
	lastEvent map[render.Key]time.Time
	held      map[render.Key]bool
	prevHeld  map[render.Key]bool
}

// NewInputManager creates a new terminal input manager.
func NewInputManager() *TermInputManager {
	return &TermInputManager{
		HoldWindow: DefaultHoldWindow,
		lastEvent:  make(map[render.Key]time.Time),
		held:       make(map[render.Key]bool),
		prevHeld:   make(map[render.Key]bool),
	}
}

// HandleKey records a key event. It reports whether the event was one of the
// bound keys.
func (m *TermInputManager) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	key, ok := tcellToKey(ev)
	if !ok {
		return false
	}
	m.mu.Lock()
	m.lastEvent[key] = now
	m.mu.Unlock()
	return true
}

// BeginFrame latches the key state for one tick. Edge queries compare this
// frame against the previous one.
func (m *TermInputManager) BeginFrame(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prevHeld, m.held = m.held, m.prevHeld
	clear(m.held)
	for key, at := range m.lastEvent {
		if now.Sub(at) < m.HoldWindow {
			m.held[key] = true
		} else {
			delete(m.lastEvent, key)
		}
	}
}

// IsKeyPressed returns whether the key is held in the current frame.
func (m *TermInputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[key]
}

// IsKeyJustPressed returns whether the key became held this frame.
func (m *TermInputManager) IsKeyJustPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[key] && !m.prevHeld[key]
}

// IsKeyJustReleased returns whether the key stopped being held this frame.
func (m *TermInputManager) IsKeyJustReleased(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.held[key] && m.prevHeld[key]
}

// tcellToKey converts a tcell key event to a render.Key.
func tcellToKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}
