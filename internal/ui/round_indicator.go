// internal/ui/round_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-spike-rush/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// RoundIndicator отображает номер текущего раунда римскими цифрами.
type RoundIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	Font             font.Face
}

// NewRoundIndicator создает новый индикатор раунда.
func NewRoundIndicator(x, y int, face font.Face) *RoundIndicator {
	return &RoundIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
		Font:             face,
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
func (i *RoundIndicator) Draw(screen *ebiten.Image, round, maxRounds int) {
	if round <= 0 {
		return
	}

	label := toRoman(round) + " / " + toRoman(maxRounds)

	// Последний раунд выделяем
	textColor := i.Color
	if round == maxRounds {
		textColor = config.LivePhaseColor
	}

	bounds := text.BoundString(i.Font, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, i.Font, textX+x, textY+y, i.OutlineColor)
		}
	}

	text.Draw(screen, label, i.Font, textX, textY, textColor)
}
