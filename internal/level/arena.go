package level

import "go-survivors/pkg/utils"

// Default builds the built-in arena: two rooms joined by a corridor, with a
// few pillars to steer around.
func Default() *Level {
	const (
		w, h   = 1200.0, 900.0
		tile   = 20.0
		border = 20.0
	)
	obstacles := []utils.Rect{
		// outer walls
		{X: 0, Y: 0, W: w, H: border},
		{X: 0, Y: h - border, W: w, H: border},
		{X: 0, Y: 0, W: border, H: h},
		{X: w - border, Y: 0, W: border, H: h},
		// the wall between the rooms, split by the corridor
		{X: 520, Y: border, W: 160, H: 360},
		{X: 520, Y: 520, W: 160, H: 360},
		// pillars
		{X: 200, Y: 200, W: 60, H: 60},
		{X: 320, Y: 600, W: 40, H: 120},
		{X: 900, Y: 300, W: 80, H: 40},
		{X: 1000, Y: 660, W: 60, H: 60},
	}
	zones := []Zone{
		{Name: "room1_north", Category: CategoryRoom1, Bounds: utils.Rect{X: border, Y: border, W: 500, H: 430}},
		{Name: "room1_south", Category: CategoryRoom1, Bounds: utils.Rect{X: border, Y: 450, W: 500, H: 430}},
		{Name: "room2_north", Category: CategoryRoom2, Bounds: utils.Rect{X: 680, Y: border, W: 500, H: 430}},
		{Name: "room2_south", Category: CategoryRoom2, Bounds: utils.Rect{X: 680, Y: 450, W: 500, H: 430}},
		{Name: "corridor_main", Category: CategoryCorridor, Bounds: utils.Rect{X: 520, Y: 380, W: 160, H: 140}},
	}
	return New(w, h, tile, utils.Vec2{X: 260, Y: 430}, obstacles, zones)
}
