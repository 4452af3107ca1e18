package gridsearch

import "strings"

// Render draws g one line per row. marks override the cell glyph at their
// coordinates.
func Render[T any](g *Grid[T], cell func(T) rune, marks map[Coord]rune) string {
	var sb strings.Builder
	sb.Grow(g.Rows() * (g.Cols() + 1))
	for r, row := range g.cells {
		for c, v := range row {
			if m, ok := marks[Coord{r, c}]; ok {
				sb.WriteRune(m)
				continue
			}
			sb.WriteRune(cell(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarkPath marks every cell crossed by a run path with the heading it was
// entered in.
func MarkPath(path []State) map[Coord]rune {
	marks := make(map[Coord]rune)
	cells := ExpandRuns(path)
	j := 0
	for i := 1; i < len(path); i++ {
		r := []rune(path[i].Facing.String())[0]
		for j < len(cells) {
			marks[cells[j]] = r
			j++
			if cells[j-1] == path[i].Pos {
				break
			}
		}
	}
	return marks
}

// MarkCells marks each of cs with r.
func MarkCells(cs []Coord, r rune) map[Coord]rune {
	marks := make(map[Coord]rune, len(cs))
	for _, c := range cs {
		marks[c] = r
	}
	return marks
}
