package system

import (
	"testing"

	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/grid"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/vmath"
)

// openLevel builds a walled rectangle of empty cells with the player at the
// top-left interior corner and an exit at the bottom-right
func openLevel(cols, rows int) []string {
	lines := make([]string, rows)
	for r := range lines {
		row := make([]rune, cols)
		for c := range row {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				row[c] = '#'
			} else {
				row[c] = '.'
			}
		}
		lines[r] = string(row)
	}
	lines[1] = replaceRune(lines[1], 1, 'P')
	lines[rows-2] = replaceRune(lines[rows-2], cols-2, 'X')
	return lines
}

func replaceRune(s string, i int, r rune) string {
	runes := []rune(s)
	runes[i] = r
	return string(runes)
}

func newWorld(t *testing.T, lines []string) *engine.World {
	t.Helper()
	lvl, err := grid.ParseLevel(lines, parameter.CellSize)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	return engine.NewWorld(lvl, 1)
}

// placeEnemy inserts an enemy with a fixed speed for deterministic tests
func placeEnemy(w *engine.World, x, z, speed float64) engine.Handle {
	return w.Enemies.Insert(engine.Enemy{
		Pos:    vmath.Vec3F{X: x, Y: parameter.EnemyHeight, Z: z},
		Health: parameter.EnemyInitialHealth,
		Speed:  speed,
	})
}
