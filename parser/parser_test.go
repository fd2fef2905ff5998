package parser

import (
	"testing"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("https://www.goodreads.com")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	return p
}

func TestLocateEntriesMarkedRows(t *testing.T) {
	html := `
	<table>
		<tr class="bookalike review"><td class="field title"><a href="/book/show/1">One</a></td></tr>
		<tr class="bookalike review"><td class="field title"><a href="/book/show/2">Two</a></td></tr>
		<tr><td>header row, no link</td></tr>
	</table>`

	p := newTestParser(t)
	doc, err := p.Parse([]byte(html))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := p.LocateEntries(doc)
	if len(entries) != 2 {
		t.Fatalf("LocateEntries() = %d entries, want 2", len(entries))
	}
}

func TestLocateEntriesFallbackToLinkedRows(t *testing.T) {
	// No bookalike class anywhere: strategy 2 must pick up the rows with
	// book links, and the loose div (strategy 3) must stay untouched.
	html := `
	<div class="bookList">
		<table>
			<tr><td><a href="/book/show/10">Ten</a></td></tr>
			<tr><td><a href="/book/show/11">Eleven</a></td></tr>
			<tr><td><a href="/book/show/12">Twelve</a></td></tr>
			<tr><td><a href="/about">not a book</a></td></tr>
		</table>
	</div>
	<div class="bookItem"><a href="/book/show/99">outside the table</a></div>`

	p := newTestParser(t)
	doc, err := p.Parse([]byte(html))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := p.LocateEntries(doc)
	if len(entries) != 3 {
		t.Fatalf("LocateEntries() = %d entries, want 3 (strategy 2 rows only)", len(entries))
	}
	for i, e := range entries {
		if node := e.Get(0); node.Data != "tr" {
			t.Errorf("entry %d: element = %q, want tr", i, node.Data)
		}
	}
}

func TestLocateEntriesLooseContainers(t *testing.T) {
	html := `
	<div class="book-entry"><a href="/book/show/20">Twenty</a></div>
	<div class="searchItem"><a href="/book/show/21">Twenty-one</a></div>
	<div class="sidebar"><a href="/book/show/22">class does not match</a></div>
	<div class="book-entry"><a href="/author/show/5">no book link</a></div>`

	p := newTestParser(t)
	doc, err := p.Parse([]byte(html))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	entries := p.LocateEntries(doc)
	if len(entries) != 2 {
		t.Fatalf("LocateEntries() = %d entries, want 2", len(entries))
	}
}

func TestLocateEntriesEmpty(t *testing.T) {
	html := `<p>Nothing shelved here.</p>`

	p := newTestParser(t)
	doc, err := p.Parse([]byte(html))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if entries := p.LocateEntries(doc); len(entries) != 0 {
		t.Fatalf("LocateEntries() = %d entries, want 0", len(entries))
	}
}

func TestHasNextPage(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"present", `<div class="pagination"><a class="next_page" href="?page=2">next</a></div>`, true},
		{"absent", `<div class="pagination"><span class="next_page disabled">next</span></div>`, false},
		{"no pagination", `<p>only one page</p>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)
			doc, err := p.Parse([]byte(tt.html))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := p.HasNextPage(doc); got != tt.want {
				t.Errorf("HasNextPage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "The Hobbit", "The Hobbit"},
		{"surrounding whitespace", "\n   The Hobbit \t", "The Hobbit"},
		{"inner newlines", "The\n        Hobbit", "The Hobbit"},
		{"empty", "   \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.input); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
