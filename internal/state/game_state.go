// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"garden-guardians/internal/app"
	"garden-guardians/internal/input"
	"garden-guardians/internal/interfaces"
	"garden-guardians/internal/ui"
)

// GameState runs one round of play.
type GameState struct {
	sm   *StateMachine
	deps *Deps
	game *app.Game
}

func NewGameState(sm *StateMachine, deps *Deps, game *app.Game) *GameState {
	return &GameState{sm: sm, deps: deps, game: game}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if input.AnyJustPressed(ebiten.KeyEscape) {
		g.deps.Sound.Play(interfaces.SoundPower)
		g.sm.SetState(NewMenuState(g.sm, g.deps))
		return
	}
	if input.AnyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if input.AnyJustPressed(ebiten.KeyM) {
		g.deps.Sound.Toggle()
	}
	if input.AnyJustPressed(ebiten.KeyR) && g.game.IsOver() {
		g.game.Reset()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.draw(screen, false)
}

func (g *GameState) draw(screen *ebiten.Image, paused bool) {
	g.deps.Arena.Draw(screen)
	canvas := g.deps.Canvas
	canvas.SetTarget(screen)
	g.game.Draw(canvas)
	g.deps.HUD.Draw(canvas, g.hudState(paused))
}

func (g *GameState) hudState(paused bool) ui.HUDState {
	return ui.HUDState{
		Health:  g.game.Player().Health,
		Score:   g.game.Score(),
		Elapsed: g.game.Elapsed(),
		Weapon:  g.game.WeaponName(),
		Waves:   g.game.WavesSurvived(),
		Over:    g.game.IsOver(),
		Paused:  paused,
		Muted:   !g.deps.Sound.Enabled(),
	}
}

func (g *GameState) Exit() {}
