package lsgrid

import (
	"io"
	"strings"
)

// Layout holds the tunables of the column layout.
type Layout struct {
	// Separator is written between adjacent columns. Its length is reserved
	// in every column's width. An empty Separator means a single space.
	Separator string
	// Margin is the number of column widths left unused at the right edge
	// of the terminal. Negative values count as zero.
	Margin int
}

// DefaultLayout separates columns with one space and keeps one column's worth
// of right margin, matching the classic BSD ls output.
var DefaultLayout = Layout{Separator: " ", Margin: 1}

func (lay Layout) separator() string {
	if lay.Separator == "" {
		return " "
	}
	return lay.Separator
}

// ColumnWidth returns the width of every column needed to hold names: the
// longest name's byte length plus the separator.
func (lay Layout) ColumnWidth(names []string) int {
	var longest int
	for _, name := range names {
		if len(name) > longest {
			longest = len(name)
		}
	}
	return longest + len(lay.separator())
}

// NumColumns returns how many columns of colWidth fit in width, less the
// margin. It is never less than one, including when width is unknown (zero)
// or smaller than a single column.
func (lay Layout) NumColumns(colWidth, width int) int {
	if width <= 0 || colWidth <= 0 {
		return 1
	}
	margin := lay.Margin
	if margin < 0 {
		margin = 0
	}
	cols := width/colWidth - margin
	if cols < 1 {
		return 1
	}
	return cols
}

// Arrange lays names out in a grid no wider than width. Names fill the grid
// down each column before moving right, so consecutive names are vertically
// adjacent when the grid is read row by row. A width of zero means the width
// is unknown, and gives a single column.
func (lay Layout) Arrange(names []string, width int) Grid {
	n := len(names)
	if n == 0 {
		return Grid{}
	}
	colWidth := lay.ColumnWidth(names)
	cols := lay.NumColumns(colWidth, width)
	rows := (n + cols - 1) / cols
	// Fewer names than cols*rows can leave whole columns empty; dropping
	// them doesn't move any name, since placement only depends on rows.
	cols = (n + rows - 1) / rows
	g := Grid{
		Columns:   cols,
		Rows:      rows,
		Width:     colWidth,
		Separator: lay.separator(),
		N:         n,
		cells:     make([]string, cols*rows),
	}
	for i, name := range names {
		g.cells[(i%rows)*cols+i/rows] = name
	}
	return g
}

// Grid is a set of names arranged in rows and columns. Name i of the arranged
// sequence is at row i%Rows, column i/Rows. Cells past the last name, which
// are always at the bottom of the final column, are empty.
type Grid struct {
	Columns   int
	Rows      int
	Width     int
	Separator string
	N         int
	cells     []string
}

// Empty reports whether the cell at row r, column c holds no name.
func (g Grid) Empty(r, c int) bool {
	return c*g.Rows+r >= g.N
}

// Cell returns the name at row r, column c, or "" for an empty cell.
func (g Grid) Cell(r, c int) string {
	return g.cells[r*g.Columns+c]
}

// Row returns the names in row r, left to right, without trailing empty
// cells.
func (g Grid) Row(r int) []string {
	row := make([]string, 0, g.Columns)
	for c := 0; c < g.Columns && !g.Empty(r, c); c++ {
		row = append(row, g.Cell(r, c))
	}
	return row
}

// ColumnMajor reads the grid down each column, left to right, skipping empty
// cells. It returns the names in the order they were arranged.
func (g Grid) ColumnMajor() []string {
	out := make([]string, 0, g.N)
	for c := 0; c < g.Columns; c++ {
		for r := 0; r < g.Rows; r++ {
			if g.Empty(r, c) {
				continue
			}
			out = append(out, g.Cell(r, c))
		}
	}
	return out
}

// WriteTo writes the grid to w one row per line. Every name but the last in a
// row is padded with spaces to the column width and followed by the
// separator; the last is followed by a newline. Widths are counted in bytes.
// An empty grid writes nothing.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	pad := g.Width - len(g.Separator)
	var line strings.Builder
	for r := 0; r < g.Rows; r++ {
		line.Reset()
		row := g.Row(r)
		for c, name := range row {
			line.WriteString(name)
			if c == len(row)-1 {
				break
			}
			if gap := pad - len(name); gap > 0 {
				line.WriteString(strings.Repeat(" ", gap))
			}
			line.WriteString(g.Separator)
		}
		line.WriteByte('\n')
		n, err := io.WriteString(w, line.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
