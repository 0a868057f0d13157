package pipeline

import (
	"strings"

	"github.com/alnah/go-hw2html/internal/htmltree"
)

// Head builds the <head> element from an engine script source and CSS.
// Returns nil when both are empty so the caller can omit the element.
func Head(scriptSrc, css string) *htmltree.Element {
	var children []htmltree.Node

	if scriptSrc != "" {
		children = append(children, htmltree.NewElement("script", htmltree.Attr("src", scriptSrc)))
	}
	if css != "" {
		children = append(children, StyleBlock(css))
	}

	if len(children) == 0 {
		return nil
	}
	return htmltree.NewElement("head").Append(children...)
}

// StyleBlock wraps CSS in a <style> element.
// CSS content is sanitized so it cannot close the block early.
func StyleBlock(css string) *htmltree.Element {
	return htmltree.NewElement("style").AppendText(sanitizeCSS(css))
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// JoinCSS concatenates non-empty stylesheets, base first, separated by a newline.
func JoinCSS(sheets ...string) string {
	var parts []string
	for _, s := range sheets {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
