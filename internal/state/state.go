// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// ID идентифицирует зарегистрированное состояние.
type ID string

const (
	MenuID          ID = "MENU"
	NameEntryID     ID = "NAME_ENTRY"
	DeckSelectionID ID = "DECK_SELECTION"
	PlayingID       ID = "PLAYING"
	StatsID         ID = "STATS_DISPLAY"

	PauseOverlayID    ID = "PAUSE"
	GameOverOverlayID ID = "GAME_OVER"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Machine routes per-frame update and draw between one current state and
// an optional overlay. States are registered once at startup; only the
// current/overlay pointers change afterwards.
type Machine struct {
	states map[ID]State

	current    ID
	previous   ID
	overlay    ID
	hasCurrent bool
	hasOverlay bool

	paused bool
	quit   bool
}

// NewMachine создаёт новую машину состояний без начального состояния
func NewMachine() *Machine {
	return &Machine{states: make(map[ID]State)}
}

// Register binds id to a state. Must happen before the first SetState.
func (m *Machine) Register(id ID, s State) {
	m.states[id] = s
}

// SetState выходит из текущего состояния и входит в новое. Exit и Enter
// вызываются ровно по одному разу. Unknown ids are ignored.
func (m *Machine) SetState(id ID) {
	next, ok := m.states[id]
	if !ok || (m.hasCurrent && m.current == id) {
		return
	}
	if m.hasCurrent {
		m.states[m.current].Exit()
		m.previous = m.current
	}
	m.current = id
	m.hasCurrent = true
	next.Enter()
}

// Current returns the active state id.
func (m *Machine) Current() ID { return m.current }

// Previous returns the id active before the last transition.
func (m *Machine) Previous() ID { return m.previous }

// ReturnToPrevious transitions back to the state before the last SetState.
func (m *Machine) ReturnToPrevious() {
	if m.previous != "" {
		m.SetState(m.previous)
	}
}

// SetOverlay places an overlay atop the current state without replacing
// it. The current-state id never changes here.
func (m *Machine) SetOverlay(id ID) {
	s, ok := m.states[id]
	if !ok {
		return
	}
	if m.hasOverlay && m.overlay == id {
		return
	}
	if m.hasOverlay {
		m.states[m.overlay].Exit()
	}
	m.overlay = id
	m.hasOverlay = true
	s.Enter()
}

// ClearOverlay removes the overlay, leaving the current state untouched.
func (m *Machine) ClearOverlay() {
	if !m.hasOverlay {
		return
	}
	m.states[m.overlay].Exit()
	m.hasOverlay = false
	m.overlay = ""
}

// Overlay returns the overlay id and whether one is active.
func (m *Machine) Overlay() (ID, bool) { return m.overlay, m.hasOverlay }

// Pause останавливает обновление текущего состояния; оверлей продолжает
// обновляться, отрисовка идёт всегда.
func (m *Machine) Pause()         { m.paused = true }
func (m *Machine) Resume()        { m.paused = false }
func (m *Machine) TogglePause()   { m.paused = !m.paused }
func (m *Machine) IsPaused() bool { return m.paused }

// RequestQuit signals the outer loop to stop.
func (m *Machine) RequestQuit()        { m.quit = true }
func (m *Machine) QuitRequested() bool { return m.quit }

// Update обновляет оверлей всегда, текущее состояние — только вне паузы.
// The frame that dismisses an overlay skips the current state so a single
// key press cannot be consumed by both layers.
func (m *Machine) Update(deltaTime float64) {
	hadOverlay := m.hasOverlay
	if m.hasOverlay {
		m.states[m.overlay].Update(deltaTime)
	}
	dismissed := hadOverlay && !m.hasOverlay
	if !m.paused && m.hasCurrent && !dismissed {
		m.states[m.current].Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние, затем оверлей поверх него.
func (m *Machine) Draw(screen *ebiten.Image) {
	if m.hasCurrent {
		m.states[m.current].Draw(screen)
	}
	if m.hasOverlay {
		m.states[m.overlay].Draw(screen)
	}
}
