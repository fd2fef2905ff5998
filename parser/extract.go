package parser

import (
	"log"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"goodreads-scraper/models"
)

const (
	titleFieldSel     = "td.field.title"
	authorFieldSel    = "td.field.author"
	isbnFieldSel      = "td.field.isbn"
	datePubFieldSel   = "td.field.date_pub"
	ratingFieldSel    = "td.field.rating"
	avgRatingFieldSel = "td.field.avg_rating"
	numPagesFieldSel  = "td.field.num_pages"
	valueSel          = "div.value"
	filledStarSel     = "span.staticStar.p10"
)

var (
	yearRe  = regexp.MustCompile(`\d{4}`)
	digitRe = regexp.MustCompile(`\d+`)
)

// ExtractBook pulls a book record out of one candidate row. Each field is
// attempted independently; a missing field stays nil. Returns nil when the
// row has no title, or when extraction blows up on unexpected structure —
// a bad row must never abort the page.
func (p *Parser) ExtractBook(row *goquery.Selection) (book *models.Book) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error extracting book info: %v\n", r)
			book = nil
		}
	}()

	book = &models.Book{}

	// Title and book link
	if link := row.Find(titleFieldSel).First().Find("a").First(); link.Length() > 0 {
		book.Title = cleanText(link.Text())
		if href := link.AttrOr("href", ""); href != "" {
			book.BookURL = models.StringPtr(p.resolveURL(href))
		}
	}

	// Author and author link
	if link := row.Find(authorFieldSel).First().Find("a").First(); link.Length() > 0 {
		if author := cleanText(link.Text()); author != "" {
			book.Author = models.StringPtr(author)
		}
		if href := link.AttrOr("href", ""); href != "" {
			book.AuthorURL = models.StringPtr(p.resolveURL(href))
		}
	}

	// ISBN
	if text := fieldValue(row, isbnFieldSel); text != "" && text != "None" {
		book.ISBN = models.StringPtr(text)
	}

	// Publish date: keep just the year when the text contains one,
	// e.g. "Mar 26, 1920" becomes "1920"
	if text := fieldValue(row, datePubFieldSel); text != "" && text != "None" {
		if year := yearRe.FindString(text); year != "" {
			book.PublishDate = models.StringPtr(year)
		} else {
			book.PublishDate = models.StringPtr(text)
		}
	}

	// Personal rating: count filled star indicators
	if value := row.Find(ratingFieldSel).First().Find(valueSel).First(); value.Length() > 0 {
		if filled := value.Find(filledStarSel).Length(); filled > 0 {
			book.Rating = models.IntPtr(filled)
		}
	}

	// Average rating
	if text := fieldValue(row, avgRatingFieldSel); text != "" && text != "None" {
		if avg, err := strconv.ParseFloat(text, 64); err == nil {
			book.AvgRating = models.FloatPtr(avg)
		}
	}

	// Page count: first run of digits, e.g. "320 pages" becomes 320
	if text := fieldValue(row, numPagesFieldSel); text != "" && text != "None" {
		if digits := digitRe.FindString(text); digits != "" {
			if pages, err := strconv.Atoi(digits); err == nil {
				book.Pages = models.IntPtr(pages)
			}
		}
	}

	// A record without a title is not a record
	if book.Title == "" {
		return nil
	}

	return book
}

// fieldValue returns the cleaned text of a field cell's value sub-element
func fieldValue(row *goquery.Selection, fieldSel string) string {
	value := row.Find(fieldSel).First().Find(valueSel).First()
	if value.Length() == 0 {
		return ""
	}
	return cleanText(value.Text())
}
