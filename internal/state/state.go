// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"garden-guardians/internal/defs"
	"garden-guardians/internal/interfaces"
	"garden-guardians/internal/ui"
	"garden-guardians/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Sound is the audio collaborator as the screens see it.
type Sound interface {
	interfaces.AudioSink
	Toggle() bool
	Enabled() bool
}

// Deps bundles what every screen needs. Built once in main.
type Deps struct {
	Library *defs.Library
	Sound   Sound
	Input   interfaces.InputProvider
	Canvas  *render.EbitenCanvas
	Arena   *render.ArenaRenderer
	HUD     *ui.HUD
	Logger  zerolog.Logger
	Seed    int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Quit asks the main loop to stop after this tick.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Done() bool {
	return sm.quit
}
