package refscrape

import (
	"strings"

	"golang.org/x/net/html"
)

// NoSection is the SectionMap key for content that precedes any header.
const NoSection = "none"

// DefaultNoiseTags returns the element names stripped from content nodes
// before bucketing: script, style, iframe.
func DefaultNoiseTags() []string {
	return []string{"script", "style", "iframe"}
}

// SectionMap groups sibling markup nodes under the nearest preceding
// header label. Key order is first-seen document order; content within a
// bucket is document order. A SectionMap is built once by
// SectionParser.Parse and not mutated afterward.
type SectionMap struct {
	keys    []string
	buckets map[string][]*html.Node
}

func newSectionMap() *SectionMap {
	return &SectionMap{buckets: make(map[string][]*html.Node)}
}

// Keys returns the section names in first-seen document order.
func (m *SectionMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the content nodes bucketed under name, in document order.
// Returns nil if the section does not occur.
func (m *SectionMap) Get(name string) []*html.Node {
	return m.buckets[name]
}

// Has reports whether the section occurs, even with an empty bucket.
func (m *SectionMap) Has(name string) bool {
	_, ok := m.buckets[name]
	return ok
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	return len(m.keys)
}

func (m *SectionMap) ensure(name string) {
	if _, ok := m.buckets[name]; !ok {
		m.keys = append(m.keys, name)
		m.buckets[name] = []*html.Node{}
	}
}

func (m *SectionMap) add(name string, n *html.Node) {
	m.ensure(name)
	m.buckets[name] = append(m.buckets[name], n)
}

// SectionParser divides an ordered sequence of markup nodes into named
// sections based on header markers. The zero value matches nothing;
// use NewSectionParser for the defaults.
type SectionParser struct {
	// HeaderTags are element names that delimit sections (e.g. "h2").
	HeaderTags []string

	// HeaderClasses are class attribute tokens that mark an element as a
	// section header regardless of its tag. Site-specific; empty by
	// default.
	HeaderClasses []string

	// NoiseTags are elements removed, with their subtrees, from every
	// content node before it is bucketed.
	NoiseTags []string
}

// NewSectionParser returns a SectionParser that treats h2 elements as
// headers and strips the default noise set.
func NewSectionParser() *SectionParser {
	return &SectionParser{
		HeaderTags: []string{"h2"},
		NoiseTags:  DefaultNoiseTags(),
	}
}

// Parse iterates nodes in document order, starting in the NoSection
// state. A header marker sets the current section to the trimmed text of
// its direct text children and is not itself bucketed; any other node is
// appended, noise-cleaned, to the current section's bucket. Every node
// placed in a bucket is a deep copy; the caller's tree is never mutated.
// Empty input yields an empty map, not an error.
func (p *SectionParser) Parse(nodes []*html.Node) *SectionMap {
	m := newSectionMap()
	noise := p.noiseSet()
	current := NoSection

	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Type == html.ElementNode && noise[n.Data] {
			continue
		}

		clone := cloneTree(n)
		stripNoise(clone, noise)

		if p.isHeader(clone) {
			current = directText(clone)
			m.ensure(current)
			continue
		}

		m.add(current, clone)
	}

	return m
}

func (p *SectionParser) noiseSet() map[string]bool {
	noise := make(map[string]bool, len(p.NoiseTags))
	for _, tag := range p.NoiseTags {
		noise[tag] = true
	}
	return noise
}

func (p *SectionParser) isHeader(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, tag := range p.HeaderTags {
		if n.Data == tag {
			return true
		}
	}
	if len(p.HeaderClasses) == 0 {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			for _, class := range p.HeaderClasses {
				if token == class {
					return true
				}
			}
		}
	}
	return false
}

// cloneTree deep-copies a node and its subtree, detached from any parent
// or siblings.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// stripNoise removes noise elements, including nested descendants, from
// the subtree rooted at n.
func stripNoise(n *html.Node, noise map[string]bool) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && noise[c.Data] {
			n.RemoveChild(c)
			continue
		}
		stripNoise(c, noise)
	}
}

// directText concatenates the direct text children of n and trims the
// result. Nested element text is excluded deliberately: a header's label
// is its own text, not the text of inline decorations inside it.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}
