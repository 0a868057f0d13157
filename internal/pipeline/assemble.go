package pipeline

import (
	"strconv"

	"github.com/alnah/go-hw2html/internal/document"
	"github.com/alnah/go-hw2html/internal/htmltree"
)

// Class and id values referenced by stylesheets.
const (
	centerClass     = "strictCenter"
	contentDivClass = "contentDiv"
	contentIDPrefix = "content"
	titleID         = "title"
	authorID        = "author"
)

// Options holds the optional head contents.
type Options struct {
	CSS       string // inline stylesheet; empty omits <style>
	ScriptSrc string // math engine script; empty omits <script>
}

// Assemble renders doc into a complete HTML document.
// doc is only read; assembling it twice yields identical output.
func Assemble(doc *document.Document, opts Options) *htmltree.Document {
	out := htmltree.NewDocument()
	if head := Head(opts.ScriptSrc, opts.CSS); head != nil {
		out.Append(head)
	}
	return out.Append(Body(doc))
}

// Body builds the <body> element: title, author, then content groups.
func Body(doc *document.Document) *htmltree.Element {
	body := htmltree.NewElement("body")

	if doc.HasTitle {
		body.Append(htmltree.NewElement("h1",
			htmltree.Attr("class", centerClass),
			htmltree.Attr("id", titleID),
		).AppendText(doc.Title))
	}
	if doc.HasAuthor {
		body.Append(htmltree.NewElement("h3",
			htmltree.Attr("class", centerClass),
			htmltree.Attr("id", authorID),
		).AppendText(doc.Author))
	}

	groups := &contentGroups{body: body}
	groups.open()
	for _, s := range doc.Sections {
		if s.Heading != nil {
			if !groups.current.IsEmpty() {
				groups.open()
			}
			groups.current.Append(s.Heading.HTML())
		}
		for _, p := range s.Paragraphs {
			groups.current.Append(p.HTML())
		}
	}
	return body
}

// contentGroups hands out numbered content <div>s appended to body.
type contentGroups struct {
	body    *htmltree.Element
	current *htmltree.Element
	next    int
}

func (g *contentGroups) open() {
	g.current = htmltree.NewElement("div",
		htmltree.Attr("class", contentDivClass),
		htmltree.Attr("id", contentIDPrefix+strconv.Itoa(g.next)),
	)
	g.next++
	g.body.Append(g.current)
}
