package document

import (
	"strings"

	"github.com/alnah/go-hw2html/internal/htmltree"
)

// separatorMarker must appear in every cell of a separator row.
const separatorMarker = "***"

// Align is the horizontal alignment of a table cell.
type Align int

// Alignments. AlignUnset marks a cell no separator row has styled.
const (
	AlignUnset Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the CSS text-align value, or "" for AlignUnset.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// parseAlign reads the colon markers of a separator cell.
func parseAlign(cell string) Align {
	switch {
	case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
		return AlignCenter
	case strings.HasSuffix(cell, ":"):
		return AlignRight
	default:
		return AlignLeft
	}
}

// Cell is one table cell.
type Cell struct {
	Text   string
	Header bool
	Align  Align
}

// Grid is the parsed form of a table.
//
// Rows are written like Markdown tables, cells separated by '|'. A row in which
// every cell contains "***" is a separator row and is never stored. It marks the
// row stored just before it as a header row, and its colon markers (":***" left,
// "***:" right, ":***:" center) become the alignment of that header row and of
// every following row until the next separator row. A separator row that comes
// first only sets the alignment.
//
// Rows need not have the same number of cells. Alignments beyond a row's cell
// count are dropped, and cells beyond the alignment list keep their alignment.
type Grid struct {
	rows   [][]Cell
	styles []Align
}

// ParseGrid builds a grid by appending each row in order.
func ParseGrid(rows []string) *Grid {
	g := &Grid{}
	for _, r := range rows {
		g.Append(r)
	}
	return g
}

// Append parses a single row. Malformed rows never fail.
func (g *Grid) Append(row string) {
	cells := splitRow(row)
	if len(cells) == 0 {
		return
	}

	if isSeparator(cells) {
		g.styles = make([]Align, len(cells))
		for i, c := range cells {
			g.styles[i] = parseAlign(c)
		}
		if len(g.rows) > 0 {
			last := g.rows[len(g.rows)-1]
			for i := range last {
				last[i].Header = true
			}
			applyStyles(last, g.styles)
		}
		return
	}

	newRow := make([]Cell, len(cells))
	for i, c := range cells {
		newRow[i] = Cell{Text: c}
	}
	applyStyles(newRow, g.styles)
	g.rows = append(g.rows, newRow)
}

// Rows returns the stored rows.
func (g *Grid) Rows() [][]Cell { return g.rows }

// HTML renders the grid as a <table>.
func (g *Grid) HTML() htmltree.Node {
	table := htmltree.NewElement("table")
	for _, row := range g.rows {
		tr := htmltree.NewElement("tr")
		for _, c := range row {
			tag := "td"
			if c.Header {
				tag = "th"
			}
			cell := htmltree.NewElement(tag)
			if c.Align != AlignUnset {
				cell.SetAttr("style", "text-align: "+c.Align.String())
			}
			cell.AppendText(c.Text)
			tr.Append(cell)
		}
		table.Append(tr)
	}
	return table
}

// splitRow splits on '|', drops the empty cells produced by leading and
// trailing delimiters, and trims every remaining cell.
func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	for len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func isSeparator(cells []string) bool {
	for _, c := range cells {
		if !strings.Contains(c, separatorMarker) {
			return false
		}
	}
	return true
}

func applyStyles(row []Cell, styles []Align) {
	for i := 0; i < len(row) && i < len(styles); i++ {
		row[i].Align = styles[i]
	}
}
