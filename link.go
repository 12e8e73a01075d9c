package refscrape

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Kind identifies a known catalog entity kind.
type Kind string

// Known entity kinds.
const (
	KindUnknown   Kind = ""
	KindAnime     Kind = "anime"
	KindManga     Kind = "manga"
	KindCharacter Kind = "character"
	KindPerson    Kind = "person"
)

// PathSegment returns the canonical URL path segment for the kind.
// The switch is exhaustive over the known kinds; KindUnknown has no
// canonical path and returns "".
func (k Kind) PathSegment() string {
	switch k {
	case KindAnime:
		return "anime"
	case KindManga:
		return "manga"
	case KindCharacter:
		return "character"
	case KindPerson:
		return "people"
	case KindUnknown:
		return ""
	}
	return ""
}

// DefaultKinds returns the registry mapping canonical path segments to
// entity kinds. Resolvers are populated with an explicit registry at
// construction; an unregistered segment resolves to nothing rather than
// being guessed at.
func DefaultKinds() map[string]Kind {
	return map[string]Kind{
		"anime":     KindAnime,
		"manga":     KindManga,
		"character": KindCharacter,
		"people":    KindPerson,
	}
}

// Reference is a (type, id) pair decoded from a composite "type:id"
// reference string.
type Reference struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// ParseReference splits s on the first colon into (type, id). A string
// with no colon fails with EINVALID. Non-numeric id text coerces to 0:
// upstream reference data encodes unknown ids as non-numeric text, and 0
// is kept as the sentinel for those rather than failing the whole parse.
func ParseReference(s string) (Reference, error) {
	typ, idText, ok := strings.Cut(s, ":")
	if !ok {
		return Reference{}, Errorf(EINVALID, "reference %q missing type:id delimiter", s)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		id = 0
	}
	return Reference{Type: typ, ID: id}, nil
}

// canonicalLinkRe matches the generic canonical shape host/segment/id/.
var canonicalLinkRe = regexp.MustCompile(`^https?://[^/]+/([^/]+)/(\d+)(?:/|$)`)

// ParseCanonicalID extracts the numeric id from a canonical URL of the
// given kind segment, e.g. ("https://site/anime/5114/title", "anime")
// yields "5114". Fails with EINVALID when the URL has no
// /segment/<digits>/ path; a mismatch means the upstream layout changed
// or the reference data is corrupt, so it is surfaced, never guessed.
func ParseCanonicalID(rawurl, segment string) (string, error) {
	re := regexp.MustCompile(`/` + regexp.QuoteMeta(segment) + `/(\d+)(?:/|$)`)
	m := re.FindStringSubmatch(rawurl)
	if m == nil {
		return "", Errorf(EINVALID, "url %q does not contain a canonical /%s/<id>/ path", rawurl, segment)
	}
	return m[1], nil
}

// ParseCanonicalLink parses a canonical URL without an expected kind,
// returning the path segment and numeric id. Fails with EINVALID when
// the URL does not match the host/segment/id shape.
func ParseCanonicalLink(rawurl string) (segment, id string, err error) {
	m := canonicalLinkRe.FindStringSubmatch(rawurl)
	if m == nil {
		return "", "", Errorf(EINVALID, "url %q does not match the canonical host/type/id shape", rawurl)
	}
	return m[1], m[2], nil
}

// CompositeKey namespaces identity-mapping lookups by source name and
// entity kind, e.g. "mal/anime".
func CompositeKey(source string, kind Kind) string {
	return source + "/" + string(kind)
}

// Resolver maps canonical third-party URLs back to internally known
// records via an identity mapping. The kinds registry is an explicit
// segment-to-kind mapping fixed at construction.
type Resolver struct {
	source   string
	identity IdentityService
	kinds    map[string]Kind
}

// NewResolver creates a Resolver for the named source. If kinds is nil,
// DefaultKinds is used.
func NewResolver(source string, identity IdentityService, kinds map[string]Kind) *Resolver {
	if kinds == nil {
		kinds = DefaultKinds()
	}
	return &Resolver{source: source, identity: identity, kinds: kinds}
}

// ResolveURL parses the canonical URL and looks the (source/kind, id)
// pair up in the identity mapping. Returns (nil, nil) when the path
// segment is not a registered kind or when the mapping has no entry:
// an unmapped external link is expected, not exceptional.
func (r *Resolver) ResolveURL(ctx context.Context, rawurl string) (*ExternalRecord, error) {
	segment, idText, err := ParseCanonicalLink(rawurl)
	if err != nil {
		return nil, err
	}

	kind, ok := r.kinds[segment]
	if !ok {
		return nil, nil
	}

	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return nil, Errorf(EINVALID, "canonical id %q out of range", idText)
	}

	return r.identity.Lookup(ctx, CompositeKey(r.source, kind), id)
}

// ResolveNode extracts the node's href attribute and resolves it like
// ResolveURL. Fails with EINVALID when the node carries no href.
func (r *Resolver) ResolveNode(ctx context.Context, n *html.Node) (*ExternalRecord, error) {
	href := Href(n)
	if href == "" {
		return nil, Errorf(EINVALID, "node has no href attribute")
	}
	return r.ResolveURL(ctx, href)
}

// Href returns the node's trimmed href attribute, or "" if absent.
func Href(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}
