package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never belongs to a posting.
const noiseSelector = "nav, footer, header, script, style, noscript, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// blockSelector lists the elements rendered as their own line.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, dt, dd, tr"

// postingSelectors are tried in order to find the posting body; the page body
// is used when none match.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// Page is the text content of a saved posting page.
type Page struct {
	Title string
	Text  string
}

// ParseHTML extracts the posting text from an HTML page. Block elements become
// lines and list items become "- " bullets so headings and requirement lists
// survive for the section scan.
func ParseHTML(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := collapse(doc.Find("title").First().Text())
	if title == "" {
		title = collapse(doc.Find("h1").First().Text())
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	var lines []string
	content.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Blocks and sub-lists nested in a list item are emitted with the item.
		if s.ParentsFiltered("li").Length() > 0 {
			return
		}
		text := collapse(s.Text())
		if text == "" {
			return
		}
		if s.Is("li") {
			text = "- " + text
		}
		if s.Is("h1, h2, h3, h4, h5, h6") && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, text)
	})

	text := strings.Join(lines, "\n")
	if text == "" {
		text = cleanWhitespace(content.Text())
	}
	return &Page{Title: title, Text: text}, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
