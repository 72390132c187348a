package fifteen

// Level defines a campaign level: a shuffle depth for the board.
// Depths are calibrated for a 3x3 grid; Game scales them by board size.
type Level struct {
	ID      int
	Name    string
	Shuffle int // Random single-step moves applied from solved
}

// Levels defines the 10 campaign levels with increasing shuffle depth.
// Early levels stay well within the solver's reach, so hints always work;
// later ones get close to fully mixed.
var Levels = []Level{
	{ID: 1, Name: "First Slides", Shuffle: 6},
	{ID: 2, Name: "Warming Up", Shuffle: 10},
	{ID: 3, Name: "Shifting Gears", Shuffle: 15},
	{ID: 4, Name: "Tangled", Shuffle: 20},
	{ID: 5, Name: "Scrambled", Shuffle: 28},
	{ID: 6, Name: "Deep Mix", Shuffle: 36},
	{ID: 7, Name: "Lost Corners", Shuffle: 46},
	{ID: 8, Name: "Full Spin", Shuffle: 58},
	{ID: 9, Name: "Chaos", Shuffle: 72},
	{ID: 10, Name: "Grandmaster", Shuffle: 90},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
