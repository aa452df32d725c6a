// Package htmltext flattens HTML job descriptions into plain text so the
// text heuristics can run on them. Listing APIs disagree on whether
// descriptions are HTML or plain text; plain input passes through untouched.
package htmltext

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var tagRE = regexp.MustCompile(`<[^>]*>`)

// blockSelector covers elements whose end should force a line break.
const blockSelector = "p, div, ul, ol, h1, h2, h3, h4, h5, h6, tr"

// Plain converts an HTML fragment to plain text. List items are rendered as
// dash bullets on their own lines so bullet extraction keeps working; other
// block elements end with a line break. Input without markup is returned
// as-is.
func Plain(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(html.UnescapeString(tagRE.ReplaceAllString(s, " ")))
	}

	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		sel.PrependHtml("\n- ")
		sel.AppendHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return collapse(doc.Text())
}

// collapse trims each line, squeezes runs of spaces, and drops blank lines.
func collapse(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
