package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/quocvuong92/tassist/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS persons (
	position     INTEGER PRIMARY KEY,
	student_id   TEXT NOT NULL UNIQUE,
	name         TEXT NOT NULL,
	phone        TEXT NOT NULL,
	email        TEXT NOT NULL,
	class_number TEXT NOT NULL,
	github       TEXT NOT NULL DEFAULT '',
	repository   TEXT NOT NULL DEFAULT '',
	progress     INTEGER NOT NULL DEFAULT 0,
	tags         TEXT NOT NULL DEFAULT ''
);`

// tags are stored as one comma separated column; tag names are alphanumeric
const tagSeparator = ","

// SQLiteStore keeps the roster in a SQLite database
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore opens (and creates if needed) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL", schema} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return &SQLiteStore{path: path, db: db}, nil
}

// Path returns the database location
func (s *SQLiteStore) Path() string {
	return s.path
}

// Load reads every row in display order
func (s *SQLiteStore) Load() (*model.AddressBook, error) {
	rows, err := s.db.Query(`SELECT name, phone, email, class_number, student_id,
		github, repository, progress, tags FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	var stored []adaptedPerson
	for rows.Next() {
		var a adaptedPerson
		var tags string
		if err := rows.Scan(&a.Name, &a.Phone, &a.Email, &a.ClassNumber, &a.StudentID,
			&a.Github, &a.Repository, &a.Progress, &tags); err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if tags != "" {
			a.Tags = strings.Split(tags, tagSeparator)
		}
		stored = append(stored, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return toAddressBook(stored)
}

// Save replaces the stored roster in one transaction
func (s *SQLiteStore) Save(ab *model.AddressBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM persons"); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO persons (position, student_id, name, phone, email,
		class_number, github, repository, progress, tags) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, a := range fromAddressBook(ab) {
		if _, err := stmt.Exec(i, a.StudentID, a.Name, a.Phone, a.Email, a.ClassNumber,
			a.Github, a.Repository, a.Progress, strings.Join(a.Tags, tagSeparator)); err != nil {
			return fmt.Errorf("failed to insert %s: %w", a.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
