// Package htmltree provides a minimal HTML element tree with string serialization.
//
// The tree is not meant to comply with any HTML standard. It only knows how to
// print itself: elements with ordered attributes and children, empty elements
// such as <br>, and raw text leaves that are written verbatim.
package htmltree

import (
	"html"
	"strings"
)

// Doctype is written on its own line before the root element of a Document.
const Doctype = "<!DOCTYPE html>"

// Node is anything that can appear as a child of an Element.
type Node interface {
	// WriteTo appends the serialized form of the node to b.
	WriteTo(b *strings.Builder)
}

// Attribute is a single name="value" pair.
type Attribute struct {
	Name  string
	Value string
}

// Attr is shorthand for building an Attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

func (a Attribute) writeTo(b *strings.Builder) {
	b.WriteByte(' ')
	b.WriteString(a.Name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(a.Value))
	b.WriteByte('"')
}

// attributes keeps insertion order and unique names.
type attributes []Attribute

func (as *attributes) set(a Attribute) {
	for i := range *as {
		if (*as)[i].Name == a.Name {
			(*as)[i].Value = a.Value
			return
		}
	}
	*as = append(*as, a)
}

func (as attributes) get(name string) (string, bool) {
	for _, a := range as {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Element is an HTML tag with attributes and children.
type Element struct {
	tag      string
	attrs    attributes
	children []Node
}

// NewElement creates an element with the given tag and attributes.
// A later attribute with the same name replaces an earlier one.
func NewElement(tag string, attrs ...Attribute) *Element {
	e := &Element{tag: tag}
	for _, a := range attrs {
		e.attrs.set(a)
	}
	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// SetAttr adds an attribute or replaces the value of an existing one.
func (e *Element) SetAttr(name, value string) {
	e.attrs.set(Attribute{Name: name, Value: value})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.attrs.get(name)
}

// Attrs returns a copy of the element's attributes in insertion order.
func (e *Element) Attrs() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Append adds child nodes in order. Nil nodes are skipped.
func (e *Element) Append(nodes ...Node) *Element {
	for _, n := range nodes {
		if n != nil {
			e.children = append(e.children, n)
		}
	}
	return e
}

// AppendText adds a raw text leaf.
func (e *Element) AppendText(s string) *Element {
	return e.Append(Text(s))
}

// Children returns the element's children.
func (e *Element) Children() []Node { return e.children }

// IsEmpty reports whether the element has no children.
func (e *Element) IsEmpty() bool { return len(e.children) == 0 }

// Find returns the first descendant element with the given tag, depth first,
// or nil if there is none. The receiver itself is not considered.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.children {
		child, ok := c.(*Element)
		if !ok {
			continue
		}
		if child.tag == tag {
			return child
		}
		if found := child.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// WriteTo writes the open tag, a newline and the children when there are any,
// then a newline, the close tag and a trailing newline.
func (e *Element) WriteTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		a.writeTo(b)
	}
	b.WriteByte('>')
	if len(e.children) > 0 {
		b.WriteByte('\n')
	}
	for _, c := range e.children {
		c.WriteTo(b)
	}
	b.WriteString("\n</")
	b.WriteString(e.tag)
	b.WriteString(">\n")
}

// String returns the serialized element.
func (e *Element) String() string {
	var b strings.Builder
	e.WriteTo(&b)
	return b.String()
}

// EmptyElement is a tag that never has content, such as <br> or <meta>.
type EmptyElement struct {
	tag   string
	attrs attributes
}

// NewEmptyElement creates an empty element with the given tag and attributes.
func NewEmptyElement(tag string, attrs ...Attribute) *EmptyElement {
	e := &EmptyElement{tag: tag}
	for _, a := range attrs {
		e.attrs.set(a)
	}
	return e
}

// BR returns a line break element.
func BR() *EmptyElement {
	return &EmptyElement{tag: "br"}
}

// Tag returns the element's tag name.
func (e *EmptyElement) Tag() string { return e.tag }

// WriteTo writes the open tag only.
func (e *EmptyElement) WriteTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		a.writeTo(b)
	}
	b.WriteByte('>')
}

// String returns the serialized element.
func (e *EmptyElement) String() string {
	var b strings.Builder
	e.WriteTo(&b)
	return b.String()
}

// Text is a leaf written verbatim, without escaping.
type Text string

// WriteTo writes the text as is.
func (t Text) WriteTo(b *strings.Builder) {
	b.WriteString(string(t))
}

// Document is an HTML document: a doctype line followed by an <html> root.
type Document struct {
	root *Element
}

// NewDocument creates a document with an empty <html> root.
func NewDocument() *Document {
	return &Document{root: NewElement("html")}
}

// Root returns the <html> element.
func (d *Document) Root() *Element { return d.root }

// Append adds nodes to the <html> element.
func (d *Document) Append(nodes ...Node) *Document {
	d.root.Append(nodes...)
	return d
}

// String returns the doctype line followed by the serialized root.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(Doctype)
	b.WriteByte('\n')
	d.root.WriteTo(&b)
	return b.String()
}

// Compile-time interface checks.
var (
	_ Node = (*Element)(nil)
	_ Node = (*EmptyElement)(nil)
	_ Node = Text("")
)
