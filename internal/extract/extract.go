package extract

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// Document holds the two fields scraped from a meme detail page.
type Document struct {
	Title string
	About string
}

// ErrStructureNotFound marks markup that lacks the expected heading or
// descriptive block. It usually means the upstream site changed shape.
var ErrStructureNotFound = errors.New("expected page structure not found")

// FromHTML extracts the entry title and about text from detail-page markup.
//
// The title is the first <h1> carrying the entry-title class (falling back to
// the first <h1> anywhere), with category-label decoration skipped. The about
// text is the run of <p> siblings following the "about" section heading inside
// the entry_body container, falling back to the entry body's first paragraph
// when the page has no about section. Everything else on the page — ads,
// navigation, comments — is ignored.
func FromHTML(input []byte) (Document, error) {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}, ErrStructureNotFound
	}
	title := entryTitle(node)
	about := aboutText(node)
	if title == "" || about == "" {
		return Document{}, ErrStructureNotFound
	}
	return Document{Title: title, About: about}, nil
}

func entryTitle(root *html.Node) string {
	h1 := findFirst(root, func(n *html.Node) bool {
		return isElement(n, "h1") && hasClass(n, "entry-title")
	})
	if h1 == nil {
		h1 = findFirst(root, func(n *html.Node) bool { return isElement(n, "h1") })
	}
	if h1 == nil {
		return ""
	}
	// Category and status badges render inside the heading on some pages.
	return textContent(h1, func(n *html.Node) bool {
		return hasClass(n, "label") || hasClass(n, "category")
	})
}

func aboutText(root *html.Node) string {
	body := findByID(root, "entry_body")
	if body == nil {
		return ""
	}
	if heading := findByID(body, "about"); heading != nil {
		if text := sectionText(heading); text != "" {
			return text
		}
	}
	// Older entries have no section headings at all; the first paragraph of the
	// entry body is the closest thing to an about blurb.
	if p := findFirst(body, func(n *html.Node) bool { return isElement(n, "p") }); p != nil {
		return paragraphText(p)
	}
	return ""
}

// sectionText joins the paragraphs between a section heading and the next
// id-bearing heading, which is how the site delimits sections.
func sectionText(heading *html.Node) string {
	var parts []string
	for s := heading.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && attr(s, "id") != "" {
			break
		}
		if isElement(s, "p") {
			if text := paragraphText(s); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// paragraphText renders a paragraph to plain text, dropping citation markers
// and inline edit links.
func paragraphText(p *html.Node) string {
	return textContent(p, func(n *html.Node) bool {
		if isElement(n, "sup") {
			return true
		}
		return isElement(n, "a") && hasClass(n, "edit")
	})
}

// textContent collects the text beneath n with whitespace collapsed, skipping
// any subtree for which skip returns true.
func textContent(n *html.Node, skip func(*html.Node) bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			name := strings.ToLower(cur.Data)
			if name == "script" || name == "style" || name == "noscript" {
				return
			}
			if skip != nil && skip(cur) {
				return
			}
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseSpaces(b.String())
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, match); res != nil {
			return res
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	return findFirst(n, func(cur *html.Node) bool {
		return cur.Type == html.ElementNode && attr(cur, "id") == id
	})
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
