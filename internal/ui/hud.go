// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"garden-guardians/internal/config"
	"garden-guardians/internal/interfaces"
	"garden-guardians/pkg/geom"
)

const (
	HealthPips       = 10
	HealthPipRadius  = 6.0
	HealthPipSpacing = 3.0
	healthPerPip     = config.PlayerHealth / HealthPips

	defeatMessage = "You lost! Press R to try again"
	helpMessage   = "ESC - menu | R - restart | P - pause | M - sound"
	pausedMessage = "PAUSED"

	hudLargeFont  = 32
	hudSmallFont  = 20
	hudBannerFont = 48
	hudHelpFont   = 18
	hudMargin     = 20.0
)

// HUDState is what the HUD needs to know about the run.
type HUDState struct {
	Health  int
	Score   int
	Elapsed float64
	Weapon  string
	Waves   int
	Over    bool
	Paused  bool
	Muted   bool
}

// HUD рисует интерфейс поверх арены.
type HUD struct {
	Position geom.Vec2
	Color    color.RGBA
	waves    *WaveIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Position: geom.V(hudMargin, hudMargin),
		Color:    config.UIColor,
		waves:    NewWaveIndicator(config.ScreenWidth/2, hudMargin, hudLargeFont, config.UIColor),
	}
}

func (h *HUD) Draw(canvas interfaces.Canvas, s HUDState) {
	x, y := h.Position.X, h.Position.Y

	canvas.Text(fmt.Sprintf("Health: %d", s.Health), hudLargeFont, x, y, h.Color)
	h.drawHealthPips(canvas, s.Health, geom.V(x, y+hudLargeFont+4))
	canvas.Text(fmt.Sprintf("Score: %d", s.Score), hudSmallFont, x, y+60, h.Color)
	canvas.Text(fmt.Sprintf("Time: %d s", int(s.Elapsed)), hudSmallFont, x, y+84, h.Color)
	if s.Weapon != "" {
		canvas.Text(fmt.Sprintf("Weapon: %s", s.Weapon), hudSmallFont, x, y+108, h.Color)
	}
	if s.Muted {
		canvas.Text("Sound off", hudSmallFont, x, y+132, h.Color)
	}

	h.waves.Draw(canvas, s.Waves)

	help := helpMessage
	w, hh := canvas.MeasureText(help, hudHelpFont)
	canvas.Text(help, hudHelpFont, config.ScreenWidth-w-hudMargin, config.ScreenHeight-hh-hudMargin, h.Color)

	switch {
	case s.Over:
		h.drawBanner(canvas, defeatMessage)
	case s.Paused:
		h.drawBanner(canvas, pausedMessage)
	}
}

// drawHealthPips рисует здоровье рядом кружков, по кружку на каждые 10 единиц.
func (h *HUD) drawHealthPips(canvas interfaces.Canvas, health int, origin geom.Vec2) {
	filled := PipsFor(health)
	for j := 0; j < HealthPips; j++ {
		c := geom.V(origin.X+HealthPipRadius+float64(j)*(HealthPipRadius*2+HealthPipSpacing), origin.Y+HealthPipRadius)
		clr := DarkenColor(config.PlayerColor)
		if j < filled {
			clr = config.PlayerColor
		}
		canvas.FillCircle(c, HealthPipRadius, clr)
	}
}

func (h *HUD) drawBanner(canvas interfaces.Canvas, msg string) {
	w, _ := canvas.MeasureText(msg, hudBannerFont)
	canvas.Text(msg, hudBannerFont, config.ScreenWidth/2-w/2, config.ScreenHeight/2-24, h.Color)
}

// PipsFor returns how many pips are lit for health; a partly filled pip counts.
func PipsFor(health int) int {
	if health <= 0 {
		return 0
	}
	pips := (health + healthPerPip - 1) / healthPerPip
	if pips > HealthPips {
		return HealthPips
	}
	return pips
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
