// Package svg provides thin accessors over a parsed SVG document.
// Graphviz renders each node and edge as a <g> group whose children
// (title, text, path, shape elements) carry everything needed to
// reconstruct the graph, so the queries here are deliberately simple.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps a parsed SVG file
type Document struct {
	doc *goquery.Document
}

// NewDocument parses an SVG document from the given reader
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing SVG: %w", err)
	}
	return &Document{doc: doc}, nil
}

// NewDocumentFromString parses an SVG document held in a string
func NewDocumentFromString(content string) (*Document, error) {
	return NewDocument(strings.NewReader(content))
}

// Root returns the outermost graph group of the document, or nil if
// the document does not contain one
func (d *Document) Root() *goquery.Selection {
	sel := d.doc.Find("g.graph").First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}

// Groups returns every <g> group of the given class (typically "node"
// or "edge") in document order
func (d *Document) Groups(class string) []*goquery.Selection {
	var ret []*goquery.Selection
	d.doc.Find("g."+class).Each(func(i int, s *goquery.Selection) {
		ret = append(ret, s)
	})
	return ret
}

// GetFirst returns the first direct child of g with the given tag,
// or nil when there is none
func GetFirst(g *goquery.Selection, tag string) *goquery.Selection {
	children := g.ChildrenFiltered(tag)
	if children.Length() == 0 {
		return nil
	}
	return children.First()
}

// GetTitle returns the text of the group's title child. The second
// return value is false when the group has no title element.
func GetTitle(g *goquery.Selection) (string, bool) {
	title := GetFirst(g, "title")
	if title == nil {
		return "", false
	}
	return title.Text(), true
}

// GetTexts returns the contents of every direct child <text> element
// of g, in document order
func GetTexts(g *goquery.Selection) []string {
	var ret []string
	g.ChildrenFiltered("text").Each(func(i int, s *goquery.Selection) {
		ret = append(ret, s.Text())
	})
	return ret
}

// ID returns the id attribute of the element, or "" when unset
func ID(g *goquery.Selection) string {
	id, _ := g.Attr("id")
	return id
}
