// Package document parses homework markup into a typed tree.
//
// A document starts with a header (title line, author line) ended by an empty
// line. Sections follow, separated by two empty lines. The first line of a
// section is its heading. Within a section, single empty lines separate
// paragraphs, and each paragraph holds blocks:
//
//	Text      ordinary lines, merged while consecutive
//	PreText   lines starting with "//", prefix removed, kept verbatim
//	Table     lines starting with "|", parsed into a Grid on render
//
// Every node renders itself into an htmltree.Node. Parsing never fails on
// content; malformed markup degrades into empty sections or plain text.
package document
