// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth      = 300
	xpBarHeight     = 10
	levelRectWidth  = 16
	levelRectHeight = 10
	levelRectGap    = 6
	// Квадратики показывают уровень внутри десятка; десятки пишутся текстом.
	levelPips   = 10
	borderWidth = 1
)

var (
	xpBarColorFill = color.RGBA{70, 130, 230, 220}
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// XPFill is the filled share of the experience bar, clamped to [0, 1].
func XPFill(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 || currentXP <= 0 {
		return 0
	}
	if currentXP >= xpToNext {
		return 1
	}
	return float64(currentXP) / float64(xpToNext)
}

// LitPips is how many level squares are filled for level.
func LitPips(level int) int {
	if level <= 0 {
		return 0
	}
	n := level % levelPips
	if n == 0 {
		n = levelPips
	}
	return n
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Рисуем белую обводку для полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Рисуем заполненную часть полосы опыта
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * XPFill(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}

	// 3. Рисуем прямоугольники уровня
	rectY := i.Y + xpBarHeight + 6
	lit := LitPips(level)
	for j := 0; j < levelPips; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < lit {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, xpBarColorFill, true)
		}
	}
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerLevelIndicator) GetHeight() float32 {
	return xpBarHeight + 6 + levelRectHeight
}
