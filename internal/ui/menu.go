// internal/ui/menu.go
package ui

import (
	"fmt"
	"image/color"

	"garden-guardians/internal/config"
	"garden-guardians/internal/interfaces"
	"garden-guardians/pkg/geom"
)

const (
	menuTitle      = "Garden Guardians"
	menuSubtitle   = "Pick a weapon (1-3) to defend the garden"
	menuHelp       = "Controls: WASD or arrows to move, mouse to aim and shoot, ESC - menu"
	menuTopY       = 220.0
	menuRowHeight  = 80.0
	menuEntryFont  = 32
	menuDescFont   = 20
	menuTitleFont  = 56
	menuSubFont    = 24
	menuFramePadX  = 18.0
	menuFramePadY  = 10.0
	menuFrameH     = 66.0
	menuFrameWidth = 3.0
)

// MenuEntry is one selectable weapon.
type MenuEntry struct {
	Name        string
	Description string
	Color       color.RGBA
}

// WeaponMenu: список оружия с подсвеченным пунктом.
type WeaponMenu struct {
	Entries     []MenuEntry
	Highlighted int
}

func NewWeaponMenu(entries []MenuEntry) *WeaponMenu {
	return &WeaponMenu{Entries: entries}
}

// MoveUp and MoveDown wrap around.
func (m *WeaponMenu) MoveUp() {
	if len(m.Entries) == 0 {
		return
	}
	m.Highlighted = (m.Highlighted - 1 + len(m.Entries)) % len(m.Entries)
}

func (m *WeaponMenu) MoveDown() {
	if len(m.Entries) == 0 {
		return
	}
	m.Highlighted = (m.Highlighted + 1) % len(m.Entries)
}

// Jump highlights entry i, clamped to the last one.
func (m *WeaponMenu) Jump(i int) {
	if len(m.Entries) == 0 {
		return
	}
	if i >= len(m.Entries) {
		i = len(m.Entries) - 1
	}
	if i < 0 {
		i = 0
	}
	m.Highlighted = i
}

// Selected returns the highlighted entry.
func (m *WeaponMenu) Selected() (MenuEntry, bool) {
	if len(m.Entries) == 0 {
		return MenuEntry{}, false
	}
	return m.Entries[m.Highlighted], true
}

func (m *WeaponMenu) Draw(canvas interfaces.Canvas) {
	canvas.Fill(config.BackgroundColor)
	centred := func(s string, size int, y float64) float64 {
		w, _ := canvas.MeasureText(s, size)
		x := config.ScreenWidth/2 - w/2
		canvas.Text(s, size, x, y, config.UIColor)
		return w
	}

	centred(menuTitle, menuTitleFont, 70)
	centred(menuSubtitle, menuSubFont, 150)

	for i, e := range m.Entries {
		y := menuTopY + float64(i)*menuRowHeight
		label := fmt.Sprintf("%d. %s", i+1, e.Name)
		w := centred(label, menuEntryFont, y)
		centred(e.Description, menuDescFont, y+42)
		if i == m.Highlighted {
			x := config.ScreenWidth/2 - w/2
			frame := geom.Rect{X: x - menuFramePadX, Y: y - menuFramePadY, W: w + 2*menuFramePadX, H: menuFrameH}
			canvas.StrokeRect(frame, menuFrameWidth, e.Color)
		}
	}

	centred(menuHelp, menuDescFont, config.ScreenHeight-70)
}
