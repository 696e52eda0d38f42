package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is the in-memory, queryable tree of a normalized fragment.
//
// The fragment is parsed as the children of a synthetic <div>, so queries
// only ever match descendants of that container. Tag and attribute names
// seen by the tokenizer are kept as well, since tree construction in body
// context discards some elements (frameset, frame) outright.
type Document struct {
	root  *html.Node
	sel   *goquery.Selection
	tags  map[string]struct{}
	attrs map[string]struct{}
}

// Element is a single element of a Document.
type Element struct {
	node *html.Node
}

// Parse builds a Document from a normalized fragment.
// Malformed markup is repaired by the HTML5 parser rather than rejected.
func Parse(fragment string) (*Document, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), container)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}

	for _, node := range nodes {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
		container.AppendChild(node)
	}

	tags, attrs := scanStartTags(fragment)

	return &Document{
		root:  container,
		sel:   goquery.NewDocumentFromNode(container).Selection,
		tags:  tags,
		attrs: attrs,
	}, nil
}

// scanStartTags records the names and attribute keys of every start tag in
// fragment, lowercased, before the parser gets a chance to drop any of them.
func scanStartTags(fragment string) (tags, attrs map[string]struct{}) {
	tags = make(map[string]struct{})
	attrs = make(map[string]struct{})

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return tags, attrs
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tags[string(name)] = struct{}{}
			for hasAttr {
				var key []byte
				key, _, hasAttr = z.TagAttr()
				attrs[string(key)] = struct{}{}
			}
		}
	}
}

// MustParse is like Parse but panics on error. Intended for tests.
func MustParse(fragment string) *Document {
	doc, err := Parse(fragment)
	if err != nil {
		panic(err)
	}
	return doc
}

// Matches reports whether any element matches the CSS selector.
// An invalid selector matches nothing.
func (d *Document) Matches(selector string) bool {
	if d == nil {
		return false
	}
	return d.sel.Find(selector).Length() > 0
}

// HasTag reports whether an element with the given tag name exists.
func (d *Document) HasTag(tag string) bool {
	if d == nil {
		return false
	}
	tag = strings.ToLower(tag)
	if _, ok := d.tags[tag]; ok {
		return true
	}
	return d.Matches(tag)
}

// HasID reports whether an element whose id equals id exists.
func (d *Document) HasID(id string) bool {
	return d.findAttr("id", func(v string) bool { return v == id })
}

// HasClass reports whether any element carries class in its class list.
func (d *Document) HasClass(class string) bool {
	return d.findAttr("class", func(v string) bool {
		for _, c := range strings.Fields(v) {
			if c == class {
				return true
			}
		}
		return false
	})
}

// HasAttr reports whether any element carries the named attribute.
func (d *Document) HasAttr(name string) bool {
	if d == nil {
		return false
	}
	name = strings.ToLower(name)
	if _, ok := d.attrs[name]; ok {
		return true
	}
	return d.findAttr(name, func(string) bool { return true })
}

// HasTagNotion reports whether the document contains the notion of name:
// an element named name, an element with id name, or an element with class name.
func (d *Document) HasTagNotion(name string) bool {
	return d.HasTag(name) || d.HasID(name) || d.HasClass(name)
}

// Elements returns all elements with the given tag name in document order.
func (d *Document) Elements(tag string) []Element {
	if d == nil {
		return nil
	}

	found := d.sel.Find(strings.ToLower(tag))
	elements := make([]Element, 0, found.Length())
	for _, node := range found.Nodes {
		elements = append(elements, Element{node: node})
	}
	return elements
}

// findAttr walks the descendants of the container and reports whether any
// element has attribute key whose value satisfies match.
//
// Identifiers are compared verbatim instead of going through a selector so
// that names which are not valid CSS identifiers are still found.
func (d *Document) findAttr(key string, match func(string) bool) bool {
	if d == nil {
		return false
	}

	var found bool
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			for _, attr := range c.Attr {
				if attr.Namespace == "" && attr.Key == key && match(attr.Val) {
					found = true
					return
				}
			}
			walk(c)
		}
	}
	walk(d.root)

	return found
}

// Tag returns the lowercase tag name of the element.
func (e Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute and whether it is present.
func (e Element) Attr(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// InnerHTML returns the serialized content of the element's children.
func (e Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			// Rendering into a strings.Builder only fails on malformed trees,
			// which the parser never produces.
			return sb.String()
		}
	}
	return sb.String()
}
