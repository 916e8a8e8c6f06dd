// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthPerSegment  = 10
	HealthSegmentW    = 14
	HealthSegmentH    = 10
	HealthSegmentGap  = 3
	healthTextPadding = 4
)

var (
	healthHigh  = color.RGBA{60, 120, 230, 255}
	healthLow   = color.RGBA{220, 50, 50, 255}
	healthEmpty = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока полосой сегментов.
type PlayerHealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, face: face}
}

// SegmentColor returns the colour of segment j: empty past the current
// health, red for the lower half of max health, blue for the surplus above
// it. Once health drops to half every filled segment turns red.
func SegmentColor(j, health, maxHealth int) color.RGBA {
	segments := (maxHealth + HealthPerSegment - 1) / HealthPerSegment
	filled := (health + HealthPerSegment - 1) / HealthPerSegment
	if j >= filled {
		return healthEmpty
	}
	if health <= maxHealth/2 {
		return healthLow
	}
	if j < filled-segments/2 {
		return healthHigh
	}
	return healthLow
}

// Draw рисует индикатор здоровья и подпись с числами.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	segments := (maxHealth + HealthPerSegment - 1) / HealthPerSegment
	for j := 0; j < segments; j++ {
		x := i.X + float32(j*(HealthSegmentW+HealthSegmentGap))
		vector.DrawFilledRect(screen, x, i.Y, HealthSegmentW, HealthSegmentH, SegmentColor(j, health, maxHealth), false)
		// Рисуем белую обводку
		vector.StrokeRect(screen, x, i.Y, HealthSegmentW, HealthSegmentH, 1, color.White, false)
	}

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	x := i.X + float32(segments*(HealthSegmentW+HealthSegmentGap)) + healthTextPadding
	text.Draw(screen, healthText, i.face, int(x), int(i.Y)+HealthSegmentH, color.White)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return HealthSegmentH
}
