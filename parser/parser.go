package parser

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	bookRowSel    = "tr.bookalike"
	bookLinkSel   = "a[href*='/book/show/']"
	nextPageSel   = "a.next_page"
	classedDivSel = "div[class]"
)

var looseEntryClassRe = regexp.MustCompile(`(?i)book|item|entry`)

// Parser extracts book records from shelf listing HTML
type Parser struct {
	baseURL *url.URL
}

// NewParser creates a new Parser. baseURL is used to resolve relative book
// and author links into absolute ones.
func NewParser(baseURL string) (*Parser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	return &Parser{baseURL: u}, nil
}

// Parse builds a navigable document from raw HTML
func (p *Parser) Parse(html []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// entryStrategy is one way of locating candidate book rows in a page.
type entryStrategy func(doc *goquery.Document) []*goquery.Selection

// entryStrategies are tried in order; the first one that yields any
// candidates wins and the rest are never consulted.
var entryStrategies = []entryStrategy{
	findMarkedRows,
	findRowsWithBookLink,
	findLooseContainers,
}

// LocateEntries finds candidate book-row elements. An empty result means
// "no more data" for the current page, not an error.
func (p *Parser) LocateEntries(doc *goquery.Document) []*goquery.Selection {
	for _, strategy := range entryStrategies {
		if entries := strategy(doc); len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// findMarkedRows matches table rows carrying the shelf's book row class.
func findMarkedRows(doc *goquery.Document) []*goquery.Selection {
	var entries []*goquery.Selection
	doc.Find(bookRowSel).Each(func(i int, s *goquery.Selection) {
		entries = append(entries, s)
	})
	return entries
}

// findRowsWithBookLink matches any table row containing a book detail link.
func findRowsWithBookLink(doc *goquery.Document) []*goquery.Selection {
	var entries []*goquery.Selection
	doc.Find("tr").Each(func(i int, s *goquery.Selection) {
		if s.Find(bookLinkSel).Length() > 0 {
			entries = append(entries, s)
		}
	})
	return entries
}

// findLooseContainers matches divs whose class loosely suggests a book entry
// and which contain a book detail link. Last resort for non-table layouts.
func findLooseContainers(doc *goquery.Document) []*goquery.Selection {
	var entries []*goquery.Selection
	doc.Find(classedDivSel).Each(func(i int, s *goquery.Selection) {
		class := s.AttrOr("class", "")
		if !looseEntryClassRe.MatchString(class) {
			return
		}
		if s.Find(bookLinkSel).Length() > 0 {
			entries = append(entries, s)
		}
	})
	return entries
}

// HasNextPage reports whether the page carries a next-page affordance
func (p *Parser) HasNextPage(doc *goquery.Document) bool {
	return doc.Find(nextPageSel).Length() > 0
}

// resolveURL turns a possibly relative href into an absolute URL
func (p *Parser) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.baseURL.ResolveReference(ref).String()
}

// cleanText trims and collapses whitespace runs in element text
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
