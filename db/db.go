package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"goodreads-scraper/models"
)

// DB archives scrape runs in an embedded sqlite database so shelf history
// survives across runs. Entirely optional; the CLI only opens it when a
// path is configured.
type DB struct {
	conn *sql.DB
}

// NewDB opens (or creates) the archive database at path
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables if they don't exist
func (db *DB) initSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			scraped_at TIMESTAMP NOT NULL,
			total INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			shelf TEXT NOT NULL,
			title TEXT NOT NULL,
			author TEXT,
			publish_date TEXT,
			isbn TEXT,
			rating INTEGER,
			avg_rating REAL,
			pages INTEGER,
			book_url TEXT,
			author_url TEXT
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveRun stores one scrape run and its books in a single transaction.
// Returns the new run's ID.
func (db *DB) SaveRun(username string, books []models.Book) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (username, scraped_at, total) VALUES (?, ?, ?)`,
		username, time.Now().UTC(), len(books),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO books (run_id, shelf, title, author, publish_date, isbn,
			rating, avg_rating, pages, book_url, author_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, book := range books {
		_, err := stmt.Exec(
			runID, string(book.Shelf), book.Title,
			book.Author, book.PublishDate, book.ISBN,
			book.Rating, book.AvgRating, book.Pages,
			book.BookURL, book.AuthorURL,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert book %q: %w", book.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return runID, nil
}

// RunCount returns how many runs are archived for a username
func (db *DB) RunCount(username string) (int, error) {
	var n int
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM runs WHERE username = ?`, username).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// BooksForRun loads the archived books of one run, in insertion order
func (db *DB) BooksForRun(runID int64) ([]models.Book, error) {
	rows, err := db.conn.Query(`
		SELECT shelf, title, author, publish_date, isbn, rating, avg_rating,
			pages, book_url, author_url
		FROM books WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		var shelf string
		if err := rows.Scan(&shelf, &b.Title, &b.Author, &b.PublishDate,
			&b.ISBN, &b.Rating, &b.AvgRating, &b.Pages,
			&b.BookURL, &b.AuthorURL); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Shelf = models.Shelf(shelf)
		books = append(books, b)
	}
	return books, rows.Err()
}
