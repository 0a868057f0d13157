package document

import (
	"strings"

	"github.com/alnah/go-hw2html/internal/htmltree"
)

// Kind discriminates the block variants a paragraph can hold.
type Kind int

// Block kinds.
const (
	KindText Kind = iota
	KindPreText
	KindTable
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPreText:
		return "pretext"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is a content node inside a paragraph: Text, PreText or Table.
// The parser merges a line into the current block only when Kind matches.
type Block interface {
	Kind() Kind
	Append(line string)
	IsEmpty() bool
	HTML() htmltree.Node
}

// newBlock starts a block of the given kind holding one line.
func newBlock(kind Kind, line string) Block {
	switch kind {
	case KindPreText:
		return &PreText{Lines: []string{line}}
	case KindTable:
		return &Table{Rows: []string{line}}
	default:
		return &Text{Lines: []string{line}}
	}
}

// Text is ordinary prose. Consecutive lines render separated by <br>.
type Text struct {
	Lines []string
}

// Kind returns KindText.
func (t *Text) Kind() Kind { return KindText }

// Append adds a line.
func (t *Text) Append(line string) { t.Lines = append(t.Lines, line) }

// IsEmpty reports whether no line was added.
func (t *Text) IsEmpty() bool { return len(t.Lines) == 0 }

// HTML renders a <p> with a <br> between each pair of lines.
func (t *Text) HTML() htmltree.Node {
	p := htmltree.NewElement("p")
	for i, line := range t.Lines {
		if i > 0 {
			p.Append(htmltree.BR())
		}
		p.AppendText(line)
	}
	return p
}

// PreText is verbatim content from lines prefixed with "//".
type PreText struct {
	Lines []string
}

// Kind returns KindPreText.
func (p *PreText) Kind() Kind { return KindPreText }

// Append adds a line.
func (p *PreText) Append(line string) { p.Lines = append(p.Lines, line) }

// IsEmpty reports whether no line was added.
func (p *PreText) IsEmpty() bool { return len(p.Lines) == 0 }

// HTML renders the lines joined with newlines as a raw, unescaped text leaf.
func (p *PreText) HTML() htmltree.Node {
	return htmltree.Text(strings.Join(p.Lines, "\n"))
}

// Table holds raw "|" rows. Rows are parsed into a Grid on render.
type Table struct {
	Rows []string
}

// Kind returns KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Append adds a raw row.
func (t *Table) Append(row string) { t.Rows = append(t.Rows, row) }

// IsEmpty reports whether no row was added.
func (t *Table) IsEmpty() bool { return len(t.Rows) == 0 }

// Grid parses the raw rows. Each call builds a fresh grid.
func (t *Table) Grid() *Grid {
	return ParseGrid(t.Rows)
}

// HTML renders a <table> of <tr> rows with <th> header and <td> data cells.
func (t *Table) HTML() htmltree.Node {
	return t.Grid().HTML()
}

// Heading is the first line of a section, rendered as <h4>.
type Heading struct {
	Text string
}

// HTML renders an <h4>.
func (h *Heading) HTML() htmltree.Node {
	return htmltree.NewElement("h4").AppendText(h.Text)
}

// Paragraph groups blocks that appeared without a blank line between them.
type Paragraph struct {
	Blocks []Block
}

// Append adds a block.
func (p *Paragraph) Append(b Block) { p.Blocks = append(p.Blocks, b) }

// IsEmpty reports whether the paragraph holds no block.
func (p *Paragraph) IsEmpty() bool { return len(p.Blocks) == 0 }

// HTML renders a <div class="paragraph"> around each block.
func (p *Paragraph) HTML() htmltree.Node {
	div := htmltree.NewElement("div", htmltree.Attr("class", "paragraph"))
	for _, b := range p.Blocks {
		div.Append(b.HTML())
	}
	return div
}

// Section is a heading followed by paragraphs.
// Heading is nil only when the section had no lines at all.
type Section struct {
	Heading    *Heading
	Paragraphs []*Paragraph
}

// IsEmpty reports whether the section has neither heading nor paragraphs.
func (s *Section) IsEmpty() bool {
	return s.Heading == nil && len(s.Paragraphs) == 0
}

// Document is a parsed homework document.
type Document struct {
	Title     string
	Author    string
	HasTitle  bool
	HasAuthor bool
	Sections  []*Section
}

// Compile-time interface checks.
var (
	_ Block = (*Text)(nil)
	_ Block = (*PreText)(nil)
	_ Block = (*Table)(nil)
)
