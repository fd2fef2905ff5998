package models

import (
	"fmt"
	"strings"
)

// Shelf identifies which Goodreads shelf a book was scraped from.
type Shelf string

const (
	ShelfRead             Shelf = "read"
	ShelfCurrentlyReading Shelf = "currently-reading"
)

// Book represents one scraped shelf entry.
// Title is the only mandatory field; everything else may be missing from the
// shelf markup, so optional fields are pointers to distinguish "not present"
// from a zero value.
//
// Goodreads does not expose "date read" in the shelf rows we parse, so there
// is intentionally no field for it.
type Book struct {
	Title       string
	Author      *string
	BookURL     *string
	AuthorURL   *string
	ISBN        *string
	PublishDate *string // 4-digit year when one could be extracted, else raw text
	Rating      *int    // personal rating, count of filled stars (1-5)
	AvgRating   *float64
	Pages       *int
	Shelf       Shelf
}

// String formats a book for console preview output.
func (b Book) String() string {
	var sb strings.Builder
	sb.WriteString(b.Title)
	if b.Author != nil {
		sb.WriteString(" by ")
		sb.WriteString(*b.Author)
	}
	if b.Shelf != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", b.Shelf))
	}
	return sb.String()
}

// Profile holds basic public profile information. All fields are optional;
// a failed profile fetch yields the zero Profile.
type Profile struct {
	DisplayName string
	Location    string
	MemberSince string
}

// IsEmpty reports whether no profile information was found.
func (p Profile) IsEmpty() bool {
	return p.DisplayName == "" && p.Location == "" && p.MemberSince == ""
}

// StringPtr returns a pointer to s. Convenience for building optional fields.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
