// Package pipeline assembles a parsed homework document into an HTML document.
//
// The assembler builds:
//   - an optional <head> holding the math engine <script> and the <style> block
//   - a <body> with the centered title and author
//   - numbered "contentDiv" groups, a new group starting at each section
//     heading that follows content
//
// Reading the source, loading styles and writing files are left to the
// callers (the root hw2html package and the CLI).
package pipeline
