package level

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go-survivors/pkg/utils"
)

type levelFile struct {
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	TileSize    float64      `json:"tile_size"`
	PlayerStart utils.Vec2   `json:"player_start"`
	Obstacles   []utils.Rect `json:"obstacles"`
	Zones       []zoneFile   `json:"zones"`
}

type zoneFile struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
}

// Load reads a JSON level description.
//
// A zone without an explicit category takes the part of its name before the
// first underscore, so "room1_north" lands in room1.
func Load(path string) (*Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return Parse(file)
}

// Parse builds a level from JSON bytes.
func Parse(data []byte) (*Level, error) {
	var lf levelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if lf.Width <= 0 || lf.Height <= 0 || lf.TileSize <= 0 {
		return nil, fmt.Errorf("level size and tile size must be positive")
	}

	zones := make([]Zone, 0, len(lf.Zones))
	for _, z := range lf.Zones {
		cat := Category(z.Category)
		if cat == "" {
			name, _, _ := strings.Cut(z.Name, "_")
			cat = Category(name)
		}
		if !cat.Valid() {
			return nil, fmt.Errorf("zone %q: unknown category %q", z.Name, cat)
		}
		if z.W <= 0 || z.H <= 0 {
			return nil, fmt.Errorf("zone %q: empty rectangle", z.Name)
		}
		zones = append(zones, Zone{
			Name:     z.Name,
			Category: cat,
			Bounds:   utils.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H},
		})
	}
	return New(lf.Width, lf.Height, lf.TileSize, lf.PlayerStart, lf.Obstacles, zones), nil
}
