package document

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line prefixes that switch the block kind.
const (
	preTextPrefix = "//"
	tablePrefix   = "|"
)

// ErrRead indicates the input could not be read.
var ErrRead = errors.New("failed to read document")

// ParseReader reads all lines from r and parses them.
// Only read errors are reported; any text parses into some document.
func ParseReader(r io.Reader) (*Document, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Parse(lines), nil
}

// ParseString parses a document held in memory.
func ParseString(s string) *Document {
	return Parse(SplitLines(s))
}

// ReadLines reads r to the end and splits it with SplitLines.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits s into lines without their terminators. "\r\n" is
// accepted, a final terminator does not add an empty line, and lines have
// no length limit.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Parse structures lines into a Document.
//
// The header runs up to the first empty line: its first line is the title and
// its second the author. The rest is split into sections at every run of two
// empty lines.
func Parse(lines []string) *Document {
	doc := &Document{}

	i := 0
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			break
		}
		switch {
		case !doc.HasTitle:
			doc.Title, doc.HasTitle = line, true
		case !doc.HasAuthor:
			doc.Author, doc.HasAuthor = line, true
		}
	}

	for _, raw := range splitSections(lines[min(i+1, len(lines)):]) {
		doc.Sections = append(doc.Sections, parseSection(raw))
	}
	return doc
}

// splitSections groups lines into raw sections. Two consecutive empty lines
// close the current section after trimming its trailing empty lines.
func splitSections(lines []string) [][]string {
	if len(lines) == 0 {
		return nil
	}
	sections := [][]string{nil}
	lastEmpty := false

	for _, line := range lines {
		cur := len(sections) - 1
		if lastEmpty && line == "" {
			sections[cur] = trimTrailingEmpty(sections[cur])
			sections = append(sections, nil)
		} else {
			sections[cur] = append(sections[cur], line)
		}
		lastEmpty = line == ""
	}
	return sections
}

func trimTrailingEmpty(lines []string) []string {
	n := len(lines)
	for n > 0 && lines[n-1] == "" {
		n--
	}
	return lines[:n]
}

// parseSection turns raw section lines into a heading and paragraphs.
func parseSection(lines []string) *Section {
	s := &Section{}
	if len(lines) == 0 {
		return s
	}
	s.Heading = &Heading{Text: lines[0]}

	para := &Paragraph{}
	var cur Block

	flushBlock := func() {
		if cur != nil && !cur.IsEmpty() {
			para.Append(cur)
		}
		cur = nil
	}
	flushParagraph := func() {
		if !para.IsEmpty() {
			s.Paragraphs = append(s.Paragraphs, para)
			para = &Paragraph{}
		}
	}

	for _, line := range lines[1:] {
		if line == "" {
			flushBlock()
			flushParagraph()
			continue
		}

		kind, content := classify(line)
		switch {
		case cur == nil:
			cur = newBlock(kind, content)
		case cur.Kind() == kind:
			cur.Append(content)
		default:
			flushBlock()
			cur = newBlock(kind, content)
		}
	}

	flushBlock()
	flushParagraph()
	return s
}

// classify returns the block kind of a non-empty line and the content to
// store. The "//" prefix is stripped; table rows are kept whole.
func classify(line string) (Kind, string) {
	switch {
	case strings.HasPrefix(line, preTextPrefix):
		return KindPreText, strings.TrimPrefix(line, preTextPrefix)
	case strings.HasPrefix(line, tablePrefix):
		return KindTable, line
	default:
		return KindText, line
	}
}
