package testutil

// ScenarioA is the classic ten by ten patrol. The guard visits 41 cells and
// six single-obstruction placements trap it in a loop.
const ScenarioA = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// ScenarioB has the guard step north once, turn east and walk off the grid
// after five more steps.
const ScenarioB = `
....#.....
..........
....^.....
`

// ScenarioC puts an obstruction directly ahead of the guard so the first
// tick is a turn in place.
const ScenarioC = `
.....
..#..
..^..
.....
.....
`

// ScenarioD surrounds the guard's route with four obstructions forming a
// closed rectangular loop.
const ScenarioD = `
.#....
....#.
.^....
#.....
...#..
`

// Expected answers for the fixtures above
const (
	ScenarioAVisited   = 41
	ScenarioALoops     = 6
	ScenarioBVisited   = 6
	ScenarioBLoops     = 0
	ScenarioCVisited   = 3
	ScenarioDLoopCells = 8
)
