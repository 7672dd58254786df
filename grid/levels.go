package grid

// DefaultLevel is the built-in map used when no level file is given
// Border walls bound the play area; interior walls form sliding corridors
var DefaultLevel = []string{
	"####################",
	"#P...#.........#...#",
	"#....#..E......#...#",
	"#....#.....#####...#",
	"#..........#.....E.#",
	"######.....#.......#",
	"#....#.....#####...#",
	"#.E..#.............#",
	"#....#####.....#####",
	"#....#...#.....#..X#",
	"#........#..E..#...#",
	"#....#...#.....#...#",
	"####################",
}
