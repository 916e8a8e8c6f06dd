package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/pkg/flowfield"
	"go-survivors/pkg/utils"
)

func TestIsColliding(t *testing.T) {
	l := Default()

	assert.False(t, l.IsColliding(utils.Rect{X: 100, Y: 100, W: 10, H: 10}))
	assert.True(t, l.IsColliding(utils.Rect{X: 210, Y: 210, W: 10, H: 10}), "pillar")
	assert.True(t, l.IsColliding(utils.Rect{X: 5, Y: 100, W: 10, H: 10}), "outer wall")
	assert.True(t, l.IsColliding(utils.Rect{X: -50, Y: 100, W: 10, H: 10}), "outside the level")
	assert.False(t, l.IsColliding(utils.Rect{X: 260, Y: 200, W: 10, H: 10}), "touching a pillar edge is fine")
}

func TestPlayerStartIsFree(t *testing.T) {
	l := Default()
	assert.False(t, l.IsColliding(utils.Rect{X: l.PlayerStart.X, Y: l.PlayerStart.Y, W: 14, H: 20}))
	cat, ok := l.ZoneCategoryAt(utils.Rect{X: l.PlayerStart.X, Y: l.PlayerStart.Y, W: 14, H: 20})
	require.True(t, ok)
	assert.Equal(t, CategoryRoom1, cat)
}

func TestZoneCategoryAt(t *testing.T) {
	l := Default()

	cat, ok := l.ZoneCategoryAt(utils.Rect{X: 900, Y: 500, W: 10, H: 10})
	require.True(t, ok)
	assert.Equal(t, CategoryRoom2, cat)

	cat, ok = l.ZoneCategoryAt(utils.Rect{X: 590, Y: 440, W: 10, H: 10})
	require.True(t, ok)
	assert.Equal(t, CategoryCorridor, cat)

	cat, ok = l.ZoneCategoryAt(utils.Rect{X: 515, Y: 440, W: 10, H: 10})
	require.True(t, ok)
	assert.Equal(t, CategoryRoom1, cat, "room wins in the doorway")

	_, ok = l.ZoneCategoryAt(utils.Rect{X: 2000, Y: 2000, W: 1, H: 1})
	assert.False(t, ok)

	assert.Len(t, l.ZonesIn(CategoryRoom2), 2)
	assert.Empty(t, l.ZonesIn("attic"))
}

func TestRasterize(t *testing.T) {
	l := Default()
	f := l.NewFlowField()

	cols, rows := l.GridSize()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 45, rows)
	assert.Equal(t, cols, f.Width())

	assert.True(t, f.IsWall(0, 10), "outer wall")
	assert.True(t, f.IsWall(10, 10), "pillar at 200,200")
	assert.True(t, f.IsWall(12, 12))
	assert.False(t, f.IsWall(13, 13))
	assert.False(t, f.IsWall(28, 20), "corridor is open")
	assert.True(t, f.IsWall(28, 10), "wall between rooms")

	// Both rooms connect through the corridor.
	x, y := l.CellAt(l.PlayerStart)
	f.CalculateFlow(x, y)
	assert.NotEqual(t, flowfield.Inf, f.Distance(50, 40))
}

func TestCellMapping(t *testing.T) {
	l := Default()
	x, y := l.CellAt(utils.Vec2{X: 39.9, Y: 40})
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	x, _ = l.CellAt(utils.Vec2{X: -0.5, Y: 0})
	assert.Equal(t, -1, x)

	assert.Equal(t, utils.Rect{X: 20, Y: 40, W: 20, H: 20}, l.CellBounds(1, 2))
}

func TestLoad(t *testing.T) {
	data := `{
		"width": 400, "height": 300, "tile_size": 10,
		"player_start": {"x": 50, "y": 50},
		"obstacles": [{"x": 100, "y": 100, "w": 20, "h": 20}],
		"zones": [
			{"name": "room1_a", "x": 0, "y": 0, "w": 200, "h": 300},
			{"name": "hall", "category": "corridor", "x": 200, "y": 100, "w": 50, "h": 50},
			{"name": "room2_b", "x": 250, "y": 0, "w": 150, "h": 300}
		]
	}`
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, utils.Vec2{X: 50, Y: 50}, l.PlayerStart)
	assert.Len(t, l.Obstacles, 1)
	assert.Len(t, l.ZonesIn(CategoryRoom1), 1)
	assert.Len(t, l.ZonesIn(CategoryCorridor), 1)
	assert.Equal(t, "room2_b", l.ZonesIn(CategoryRoom2)[0].Name)
	assert.True(t, l.IsColliding(utils.Rect{X: 105, Y: 105, W: 1, H: 1}))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"width": 0, "height": 10, "tile_size": 1}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"width": 10, "height": 10, "tile_size": 1, "zones": [{"name": "attic_1", "w": 1, "h": 1}]}`))
	assert.ErrorContains(t, err, "unknown category")

	_, err = Parse([]byte(`{"width": 10, "height": 10, "tile_size": 1, "zones": [{"name": "room1_x"}]}`))
	assert.ErrorContains(t, err, "empty rectangle")

	_, err = Parse([]byte(`not json`))
	assert.ErrorContains(t, err, "unmarshal")

	_, err = Load(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}
