package grid

import (
	"fmt"
	"os"
	"strings"
)

// SpawnPoint is a world-plane position enumerated from the level
type SpawnPoint struct {
	X, Z float64
}

// Level is a parsed map: the obstacle grid plus spawn enumeration
type Level struct {
	Grid        *Grid
	PlayerStart SpawnPoint
	EnemySpawns []SpawnPoint
	ExitCount   int
}

// Rune markers for text levels
const (
	markWall     = '#'
	markEmpty    = '.'
	markPlayer   = 'P'
	markEnemy    = 'E'
	markExit     = 'X'
	markEmptyAlt = ' '
)

// ParseLevel builds a Level from text rows, one rune per cell
// Malformed input (non-rectangular rows, missing or duplicate player start,
// no exit) is a startup-time fatal condition surfaced as an error.
func ParseLevel(lines []string, cellSize float64) (*Level, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("level: no rows")
	}

	cells := make([][]Cell, len(lines))
	var spawns []SpawnPoint
	var start *SpawnPoint
	exits := 0

	for row, line := range lines {
		cells[row] = make([]Cell, len([]rune(line)))
		for col, r := range []rune(line) {
			switch r {
			case markWall:
				cells[row][col] = Wall
			case markEmpty, markEmptyAlt:
				cells[row][col] = Empty
			case markPlayer:
				cells[row][col] = PlayerStart
			case markEnemy:
				cells[row][col] = EnemySpawn
			case markExit:
				cells[row][col] = Exit
				exits++
			default:
				return nil, fmt.Errorf("level: unknown marker %q at row %d col %d", r, row, col)
			}
		}
	}

	g, err := New(cells, cellSize)
	if err != nil {
		return nil, err
	}

	for row := range cells {
		for col, c := range cells[row] {
			x, z := g.CellCenter(col, row)
			switch c {
			case PlayerStart:
				if start != nil {
					return nil, fmt.Errorf("level: multiple player starts")
				}
				start = &SpawnPoint{X: x, Z: z}
			case EnemySpawn:
				spawns = append(spawns, SpawnPoint{X: x, Z: z})
			}
		}
	}

	if start == nil {
		return nil, fmt.Errorf("level: missing player start")
	}
	if exits == 0 {
		return nil, fmt.Errorf("level: no exit cell, level is not winnable")
	}

	return &Level{
		Grid:        g,
		PlayerStart: *start,
		EnemySpawns: spawns,
		ExitCount:   exits,
	}, nil
}

// LoadLevel reads a text level from disk
func LoadLevel(path string, cellSize float64) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	lvl, err := ParseLevel(lines, cellSize)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return lvl, nil
}
