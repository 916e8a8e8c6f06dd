package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-survivors/pkg/utils"
)

func TestSlideMoveFree(t *testing.T) {
	lvl := openLevel(100, 100)
	box := utils.Rect{X: 40, Y: 40, W: 10, H: 10}

	out, moved := SlideMove(lvl, box, utils.Vec2{X: 1, Y: 0}, 5)
	assert.True(t, moved)
	assert.Equal(t, utils.Rect{X: 45, Y: 40, W: 10, H: 10}, out)
}

func TestSlideMoveAlongWall(t *testing.T) {
	diag := utils.Vec2{X: 1, Y: 1}.Norm()

	t.Run("blocked on X keeps full speed on Y", func(t *testing.T) {
		lvl := openLevel(100, 100, utils.Rect{X: 50, Y: 0, W: 10, H: 100})
		out, moved := SlideMove(lvl, utils.Rect{X: 40, Y: 40, W: 10, H: 10}, diag, 10)
		assert.True(t, moved)
		assert.Equal(t, 40.0, out.X)
		assert.InDelta(t, 50.0, out.Y, 1e-9)
	})

	t.Run("blocked on Y keeps full speed on X", func(t *testing.T) {
		lvl := openLevel(100, 100, utils.Rect{X: 0, Y: 60, W: 100, H: 10})
		out, moved := SlideMove(lvl, utils.Rect{X: 20, Y: 50, W: 10, H: 10}, diag, 10)
		assert.True(t, moved)
		assert.InDelta(t, 30.0, out.X, 1e-9)
		assert.Equal(t, 50.0, out.Y)
	})

	t.Run("corner stops both axes", func(t *testing.T) {
		lvl := openLevel(100, 100,
			utils.Rect{X: 50, Y: 0, W: 10, H: 100},
			utils.Rect{X: 0, Y: 50, W: 100, H: 10},
		)
		box := utils.Rect{X: 40, Y: 40, W: 10, H: 10}
		out, moved := SlideMove(lvl, box, diag, 10)
		assert.False(t, moved)
		assert.Equal(t, box, out)
	})
}

func TestSlideMoveKeepsInsideLevel(t *testing.T) {
	lvl := openLevel(100, 100)
	out, _ := SlideMove(lvl, utils.Rect{X: 2, Y: 40, W: 10, H: 10}, utils.Vec2{X: -1}, 5)
	assert.Equal(t, 2.0, out.X)

	out, moved := SlideMove(lvl, utils.Rect{X: 2, Y: 40, W: 10, H: 10}, utils.Vec2{}, 5)
	assert.False(t, moved)
	assert.Equal(t, 2.0, out.X)
}
