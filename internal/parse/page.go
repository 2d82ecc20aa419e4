// Package parse reads kartaslov "разбор слова по составу" pages.
package parse

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Row is one line of the morphemics table, as printed on the page.
type Row struct {
	Text string
	Type string
}

// Page is what we need from a morphemics page.
type Page struct {
	// Title is the text of h1.v2-h1, whitespace collapsed.
	Title string
	// Headword is the word inside «…» in Title, "" if absent.
	Headword string
	// HasTable reports whether table.morphemics-table exists.
	HasTable bool
	Rows     []Row
}

var headwordRe = regexp.MustCompile(`.*«(.*)»`)

// Parse extracts title, headword and morpheme rows from raw HTML.
func Parse(b []byte) (*Page, error) {
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	p := &Page{}
	if h1 := find(doc, func(n *html.Node) bool { return isElem(n, "h1") && hasClass(n, "v2-h1") }); h1 != nil {
		p.Title = collapse(text(h1))
		if m := headwordRe.FindStringSubmatch(p.Title); m != nil {
			p.Headword = m[1]
		}
	}

	table := find(doc, func(n *html.Node) bool { return isElem(n, "table") && hasClass(n, "morphemics-table") })
	if table == nil {
		return p, nil
	}
	p.HasTable = true

	for _, tr := range findAll(table, func(n *html.Node) bool { return isElem(n, "tr") }) {
		txt := find(tr, func(n *html.Node) bool { return isElem(n, "td") && hasClass(n, "td-morpheme-text") })
		typ := find(tr, func(n *html.Node) bool { return isElem(n, "td") && hasClass(n, "td-morpheme-type") })
		if txt == nil || typ == nil {
			continue // header rows
		}
		p.Rows = append(p.Rows, Row{
			Text: strings.TrimSpace(text(txt)),
			Type: strings.TrimSpace(text(typ)),
		})
	}
	return p, nil
}

func isElem(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func hasClass(n *html.Node, cls string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == cls {
				return true
			}
		}
	}
	return false
}

// find returns the first node under root (depth-first, root included)
// matching ok.
func find(root *html.Node, ok func(*html.Node) bool) *html.Node {
	if ok(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := find(c, ok); n != nil {
			return n
		}
	}
	return nil
}

func findAll(root *html.Node, ok func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if ok(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }
