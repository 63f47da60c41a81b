// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"garden-guardians/internal/interfaces"
)

// WaveIndicator отображает число пережитых волн римскими цифрами.
type WaveIndicator struct {
	X, Y             float64 // X is the text centre
	FontSize         int
	Color            color.RGBA
	MilestoneColor   color.RGBA // каждая десятая волна
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewWaveIndicator(x, y float64, fontSize int, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            clr,
		MilestoneColor:   color.RGBA{255, 120, 90, 255},
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(canvas interfaces.Canvas, waves int) {
	if waves <= 0 {
		return
	}
	text := toRoman(waves)

	textColor := i.Color
	if waves%10 == 0 {
		textColor = i.MilestoneColor
	}

	w, _ := canvas.MeasureText(text, i.FontSize)
	x := i.X - w/2

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			canvas.Text(text, i.FontSize, x+float64(dx), i.Y+float64(dy), i.OutlineColor)
		}
	}
	canvas.Text(text, i.FontSize, x, i.Y, textColor)
}
