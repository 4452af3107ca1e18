package main

import (
	"fmt"

	"github.com/maisem/gridsearch"
	"github.com/maisem/gridsearch/runner"
)

type solver struct {
	*runner.Puzzle
}

func (s solver) workers() int {
	return s.Config().Workers
}

/*
want=4

-L|F7
7S-7|
L|7||
-L-J|
L|-JF
*/
func (s solver) D10p1() any {
	g, err := gridsearch.ParsePipes(s.Lines())
	if err != nil {
		return err
	}
	d, err := gridsearch.Furthest(g)
	if err != nil {
		return err
	}
	return d
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	g, err := gridsearch.ParsePipes(s.Lines())
	if err != nil {
		return err
	}
	regions, err := gridsearch.EnclosedByLoop(g)
	if err != nil {
		return err
	}
	marks := gridsearch.MarkCells(gridsearch.Sorted(regions.Enclosed), 'I')
	s.Show("day 10: enclosed tiles", gridsearch.Render(g, func(p gridsearch.Pipe) rune { return rune(p) }, marks))
	return regions.Enclosed.Size()
}

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	g, err := gridsearch.ParseGalaxies(s.Lines())
	if err != nil {
		return err
	}
	small, _, err := s.Config().GalaxyExpansion(s.SampleMode)
	if err != nil {
		return err
	}
	sum, err := gridsearch.GalaxyDistanceSum(g, small, s.workers())
	if err != nil {
		return err
	}
	return sum
}

// want=8410
func (s solver) D11p2() any {
	g, err := gridsearch.ParseGalaxies(s.Lines())
	if err != nil {
		return err
	}
	_, large, err := s.Config().GalaxyExpansion(s.SampleMode)
	if err != nil {
		return err
	}
	sum, err := gridsearch.GalaxyDistanceSum(g, large, s.workers())
	if err != nil {
		return err
	}
	return sum
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return s.springs(1)
}

// want=525152
func (s solver) D12p2() any {
	return s.springs(5)
}

func (s solver) springs(unfold int) any {
	total, err := gridsearch.ParallelReduce(s.Lines(), s.workers(),
		func(line string) (uint64, error) {
			pattern, groups, err := gridsearch.ParseSpringRow(line)
			if err != nil {
				return 0, err
			}
			pattern, groups = gridsearch.UnfoldSpringRow(pattern, groups, unfold)
			return gridsearch.CountArrangements(pattern, groups)
		},
		func(acc, n uint64) uint64 { return acc + n },
		0,
	)
	if err != nil {
		return err
	}
	return total
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	g, err := gridsearch.ParseContraption(s.Lines())
	if err != nil {
		return err
	}
	lit, err := gridsearch.Energized(g, gridsearch.State{Facing: gridsearch.Right})
	if err != nil {
		return err
	}
	s.Show("day 16: energized tiles", gridsearch.Render(g, func(r rune) rune { return r },
		gridsearch.MarkCells(gridsearch.Sorted(lit), '#')))
	return lit.Size()
}

// want=51
func (s solver) D16p2() any {
	g, err := gridsearch.ParseContraption(s.Lines())
	if err != nil {
		return err
	}
	n, err := gridsearch.MaxEnergized(g, s.workers())
	if err != nil {
		return err
	}
	return n
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return s.crucible("standard")
}

// want=94
func (s solver) D17p2() any {
	return s.crucible("ultra")
}

func (s solver) crucible(name string) any {
	g, err := gridsearch.ParseDigits(s.Lines())
	if err != nil {
		return err
	}
	limits, err := s.Config().Crucible(name)
	if err != nil {
		return err
	}
	goal := gridsearch.Coord{Row: g.Rows() - 1, Col: g.Cols() - 1}
	cost, path, err := gridsearch.MinRunCost(g, gridsearch.Coord{}, goal,
		func(v uint8) gridsearch.Cost { return gridsearch.Cost(v) }, limits)
	if err != nil {
		return err
	}
	s.Debugf("%s crucible path: %v", name, path)
	s.Show(fmt.Sprintf("day 17: %s crucible, heat loss %d", name, cost),
		gridsearch.Render(g, func(v uint8) rune { return rune('0' + v) }, gridsearch.MarkPath(path)))
	return cost
}

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f2)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	plan, err := gridsearch.ParseDigPlan(s.Lines(), false)
	if err != nil {
		return err
	}
	v, err := gridsearch.LagoonVolume(plan)
	if err != nil {
		return err
	}
	return v
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	g, err := gridsearch.ParseGarden(s.Lines())
	if err != nil {
		return err
	}
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return fmt.Errorf("%w: no start", gridsearch.ErrMalformedInput)
	}
	steps, err := s.Config().GardenSteps(s.SampleMode)
	if err != nil {
		return err
	}
	n, err := gridsearch.ReachableInSteps(g, start, steps)
	if err != nil {
		return err
	}
	return n
}
