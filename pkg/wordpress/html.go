package wordpress

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the fragment with markup stripped and whitespace collapsed.
// Unparseable input is returned trimmed as-is.
func (r Rendered) Text() string {
	return htmlText(r.Rendered)
}

// Text returns the article body as plain text.
func (c Content) Text() string {
	return htmlText(c.Rendered)
}

// blockSelector matches elements whose boundaries separate words.
const blockSelector = "p, div, br, li, h1, h2, h3, h4, h5, h6, blockquote, figcaption, td"

func htmlText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	doc.Find(blockSelector).AfterHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}
