package flowfield

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/pkg/utils"
)

func chebyshev(x, y, px, py int) int {
	dx, dy := utils.Abs(x-px), utils.Abs(y-py)
	if dx > dy {
		return dx
	}
	return dy
}

func TestOpenGridMatchesChebyshev(t *testing.T) {
	f := New(6, 5)
	for py := 0; py < 5; py++ {
		for px := 0; px < 6; px++ {
			f.CalculateFlow(px, py)
			for y := 0; y < 5; y++ {
				for x := 0; x < 6; x++ {
					require.Equal(t, chebyshev(x, y, px, py), f.Distance(x, y),
						"target (%d,%d) cell (%d,%d)", px, py, x, y)
				}
			}
		}
	}
}

func TestUnreachableTargetLeavesEverythingInf(t *testing.T) {
	f := New(4, 4)
	f.SetWall(2, 2)

	for _, target := range [][2]int{{2, 2}, {-1, 0}, {4, 1}, {0, 99}} {
		f.CalculateFlow(target[0], target[1])
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				assert.Equal(t, Inf, f.Distance(x, y), "target %v cell (%d,%d)", target, x, y)
			}
		}
	}
}

func TestRecalculateDropsStaleDistances(t *testing.T) {
	f := New(3, 3)
	f.CalculateFlow(0, 0)
	require.Equal(t, 2, f.Distance(2, 2))

	f.SetWall(1, 1)
	f.CalculateFlow(1, 1)
	assert.Equal(t, Inf, f.Distance(2, 2))
}

func TestDiagonalCornerCutting(t *testing.T) {
	t.Run("sealed corner", func(t *testing.T) {
		f := New(3, 3)
		f.SetWall(1, 0)
		f.SetWall(0, 1)
		f.CalculateFlow(0, 0)

		assert.Equal(t, 0, f.Distance(0, 0))
		assert.Equal(t, Inf, f.Distance(1, 1))
		assert.Equal(t, Inf, f.Distance(2, 2))
	})

	t.Run("longer path around corner", func(t *testing.T) {
		f := New(4, 4)
		f.SetWall(1, 1)
		f.SetWall(0, 2)
		f.CalculateFlow(0, 1)

		assert.Equal(t, 1, f.Distance(1, 0))
		assert.Equal(t, 2, f.Distance(2, 1))
		assert.Equal(t, 3, f.Distance(1, 2), "diagonal through the corner must not be used")

		dir, ok := f.Direction(1, 2)
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt2/2, dir.X, 1e-9)
		assert.InDelta(t, -math.Sqrt2/2, dir.Y, 1e-9)
	})

	t.Run("single wall does not block diagonal", func(t *testing.T) {
		f := New(3, 3)
		f.SetWall(1, 0)
		f.CalculateFlow(0, 0)
		assert.Equal(t, 1, f.Distance(1, 1))
	})
}

func TestDirectionScenario(t *testing.T) {
	f := New(5, 5)
	f.CalculateFlow(2, 2)

	dir, ok := f.Direction(3, 3)
	require.True(t, ok)
	assert.InDelta(t, -0.707, dir.X, 1e-3)
	assert.InDelta(t, -0.707, dir.Y, 1e-3)

	dir, ok = f.Direction(3, 2)
	require.True(t, ok)
	assert.Equal(t, utils.Vec2{X: -1, Y: 0}, dir)

	dir, ok = f.Direction(2, 0)
	require.True(t, ok)
	assert.Equal(t, utils.Vec2{X: 0, Y: 1}, dir, "orthogonal neighbour wins the tie")
}

func TestDirectionNoInformation(t *testing.T) {
	f := New(5, 5)
	// (4,0) is sealed off by three walls.
	f.SetWall(3, 0)
	f.SetWall(3, 1)
	f.SetWall(4, 1)
	f.CalculateFlow(0, 4)

	cases := map[string][2]int{
		"target":       {0, 4},
		"negative":     {-1, 2},
		"past width":   {5, 0},
		"wall":         {3, 0},
		"out of reach": {4, 0},
	}
	for name, c := range cases {
		_, ok := f.Direction(c[0], c[1])
		assert.False(t, ok, name)
	}
	assert.Equal(t, Inf, f.Distance(4, 0))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			d := f.Distance(x, y)
			dir, ok := f.Direction(x, y)
			if d == Inf || d == 0 {
				assert.False(t, ok, "(%d,%d)", x, y)
				continue
			}
			require.True(t, ok, "(%d,%d)", x, y)
			assert.InDelta(t, 1.0, dir.Len(), 1e-9)
		}
	}
}

func TestInvalidCoordinatesNeverPanic(t *testing.T) {
	f := New(2, 2)
	assert.NotPanics(t, func() {
		f.SetWall(-5, 7)
		f.CalculateFlow(10, 10)
		_ = f.Distance(-1, -1)
		_, _ = f.Direction(100, -3)
	})
	assert.Equal(t, Inf, f.Distance(-1, 0))
	assert.True(t, f.IsWall(2, 0))
}

func TestClearWalls(t *testing.T) {
	f := New(3, 1)
	f.SetWall(1, 0)
	f.CalculateFlow(0, 0)
	require.Equal(t, Inf, f.Distance(2, 0))

	f.ClearWalls()
	f.CalculateFlow(0, 0)
	assert.Equal(t, 2, f.Distance(2, 0))
}

func TestCalculateFlowDoesNotAllocate(t *testing.T) {
	f := New(64, 48)
	f.SetWall(10, 10)
	allocs := testing.AllocsPerRun(20, func() {
		f.CalculateFlow(32, 24)
		_, _ = f.Direction(0, 0)
	})
	assert.Zero(t, allocs)
}
