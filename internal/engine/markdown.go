package engine

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// prunedElements are dropped together with their whole subtree before conversion.
// Tables are treated as layout noise, not prose.
var prunedElements = map[atom.Atom]bool{
	atom.Table: true,
}

// MarkdownConverter turns raw HTML into markdown. It is safe for concurrent use.
type MarkdownConverter struct {
	conv *converter.Converter
}

// NewMarkdownConverter builds a converter with the base and commonmark plugins.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert parses rawHTML leniently, prunes comments and tables, and returns markdown.
func (c *MarkdownConverter) Convert(rawHTML string) (string, error) {
	return c.ConvertPage(rawHTML, "")
}

// ConvertPage is Convert with relative links resolved against pageURL's origin.
func (c *MarkdownConverter) ConvertPage(rawHTML, pageURL string) (string, error) {
	md, _, err := c.ConvertPageWithTitle(rawHTML, pageURL)
	return md, err
}

// ConvertPageWithTitle is ConvertPage that also returns the page title,
// read from the same parsed tree before pruning.
func (c *MarkdownConverter) ConvertPageWithTitle(rawHTML, pageURL string) (md, title string, err error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", "", fmt.Errorf("%w: parse: %v", ErrConversionFailure, err)
	}
	title = titleOf(root)
	pruneTree(root)

	var out []byte
	if domain := originOf(pageURL); domain != "" {
		out, err = c.conv.ConvertNode(root, converter.WithDomain(domain))
	} else {
		out, err = c.conv.ConvertNode(root)
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrConversionFailure, err)
	}
	return string(out), title, nil
}

// pruneTree removes comment nodes and pruned element subtrees in place.
func pruneTree(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.CommentNode:
			n.RemoveChild(c)
		case c.Type == html.ElementNode && prunedElements[c.DataAtom]:
			n.RemoveChild(c)
		default:
			pruneTree(c)
		}
		c = next
	}
}

func originOf(pageURL string) string {
	if pageURL == "" {
		return ""
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// ExtractTitle returns the page title: og:title first, then <title>.
// Returns "" when neither is present.
func ExtractTitle(rawHTML string) string {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return titleOf(root)
}

func titleOf(root *html.Node) string {
	doc := goquery.NewDocumentFromNode(root)
	og := opengraph.NewOpenGraph()
	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		attrs := make(map[string]string, len(s.Nodes[0].Attr))
		for _, a := range s.Nodes[0].Attr {
			attrs[a.Key] = a.Val
		}
		og.ProcessMeta(attrs)
	})
	if t := strings.TrimSpace(og.Title); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("head title").First().Text())
}
