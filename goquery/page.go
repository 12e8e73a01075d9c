// Package goquery provides goquery-based helpers for locating a catalog
// page's structural containers and feeding their contents to the section
// parser. Site-specific scrapers build their field extraction on top of
// these helpers together with refscrape.Clean and refscrape.Resolver.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refscrape"
	"golang.org/x/net/html"
)

// Page is a parsed view over one fetched document. A Page belongs to a
// single scrape task and is not safe for concurrent use.
type Page struct {
	doc *goquery.Document
}

// NewPage parses raw HTML into a Page.
func NewPage(rawHTML string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, refscrape.Errorf(refscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{doc: doc}, nil
}

// FromDocument parses a fetched document into a Page.
func FromDocument(doc *refscrape.Document) (*Page, error) {
	return NewPage(doc.HTML)
}

// Container returns the first element matching the CSS selector.
// Returns ENOTFOUND when the page has no such container; for the
// structural containers a scraper depends on, that usually means the
// source layout changed.
func (p *Page) Container(selector string) (*goquery.Selection, error) {
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, refscrape.Errorf(refscrape.ENOTFOUND, "no container matches %q", selector)
	}
	return sel, nil
}

// Sections runs the section parser over the direct children of the first
// element matching the CSS selector. A missing container yields an empty
// map, not an error: a page may legitimately omit a region.
func (p *Page) Sections(selector string, parser *refscrape.SectionParser) *refscrape.SectionMap {
	sel := p.doc.Find(selector).First()
	return Sections(sel, parser)
}

// Sections runs the section parser over the direct children of each node
// in the selection, in document order.
func Sections(sel *goquery.Selection, parser *refscrape.SectionParser) *refscrape.SectionMap {
	var nodes []*html.Node
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			nodes = append(nodes, c)
		}
	}
	return parser.Parse(nodes)
}

// Text returns the concatenated text content of the nodes, in order.
// Pair with refscrape.Clean before storing anything it returns.
func Text(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(nodeText(n))
	}
	return strings.TrimSpace(sb.String())
}

// Links returns the href attributes of all anchor elements in the nodes'
// subtrees, in document order. Anchors without an href are skipped.
func Links(nodes []*html.Node) []string {
	var hrefs []string
	for _, n := range nodes {
		walk(n, func(c *html.Node) {
			if c.Type == html.ElementNode && c.Data == "a" {
				if href := refscrape.Href(c); href != "" {
					hrefs = append(hrefs, href)
				}
			}
		})
	}
	return hrefs
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
