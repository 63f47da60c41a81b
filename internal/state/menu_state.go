// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"garden-guardians/internal/app"
	"garden-guardians/internal/input"
	"garden-guardians/internal/interfaces"
	"garden-guardians/internal/ui"
)

var digitKeys = [][]ebiten.Key{
	{ebiten.Key1, ebiten.KeyNumpad1},
	{ebiten.Key2, ebiten.KeyNumpad2},
	{ebiten.Key3, ebiten.KeyNumpad3},
}

// MenuState: выбор оружия перед забегом.
type MenuState struct {
	sm   *StateMachine
	deps *Deps
	menu *ui.WeaponMenu
}

func NewMenuState(sm *StateMachine, deps *Deps) *MenuState {
	weapons := deps.Library.Weapons()
	entries := make([]ui.MenuEntry, len(weapons))
	for i, w := range weapons {
		entries[i] = ui.MenuEntry{Name: w.Name, Description: w.Description, Color: w.Color.RGBA()}
	}
	return &MenuState{sm: sm, deps: deps, menu: ui.NewWeaponMenu(entries)}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if input.AnyJustPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		m.sm.Quit()
		return
	}

	switch {
	case input.AnyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW):
		m.menu.MoveUp()
	case input.AnyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS):
		m.menu.MoveDown()
	}

	start := input.AnyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace)
	for i, keys := range digitKeys {
		if i < len(m.menu.Entries) && input.AnyJustPressed(keys...) {
			m.menu.Jump(i)
			start = true
		}
	}
	if start {
		m.startRun()
	}
}

func (m *MenuState) startRun() {
	entry, ok := m.menu.Selected()
	if !ok {
		return
	}
	game, err := app.NewGame(m.deps.Library,
		app.WithWeapon(entry.Name),
		app.WithSeed(m.deps.Seed),
		app.WithInput(m.deps.Input),
		app.WithAudio(m.deps.Sound),
		app.WithLogger(m.deps.Logger),
	)
	if err != nil {
		m.deps.Logger.Error().Err(err).Str("weapon", entry.Name).Msg("Failed to start run")
		return
	}
	m.deps.Sound.Play(interfaces.SoundPower)
	m.sm.SetState(NewGameState(m.sm, m.deps, game))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.deps.Canvas.SetTarget(screen)
	m.menu.Draw(m.deps.Canvas)
}

func (m *MenuState) Exit() {}
