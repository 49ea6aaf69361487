package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	OutlineColor color.RGBA
	fontFace     font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.WaveTextColor, // Используем цвет из конфига
		OutlineColor: color.RGBA{0, 0, 0, 255},
		fontFace:     face,
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

// waveLabel returns "VII / XII" style text, or "-" before the first wave.
func waveLabel(wave, total int) string {
	if wave <= 0 {
		return fmt.Sprintf("- / %s", toRoman(total))
	}
	return fmt.Sprintf("%s / %s", toRoman(wave), toRoman(total))
}

// Draw отрисовывает индикатор на экране. Волны с боссом рисуются красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int, boss bool) {
	label := waveLabel(wave, total)
	textColor := i.Color
	if boss {
		textColor = config.BossWaveColor
	}

	bounds := text.BoundString(i.fontFace, label)
	textX := i.X - bounds.Dx()/2

	// Рисуем обводку
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, textX+x, i.Y+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, textX, i.Y, textColor)
}
