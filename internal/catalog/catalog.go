// Package catalog stores the reusable add-on and system templates an
// estimate is composed from.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateNotFound is returned when no template has the given id.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInvalidTemplate is returned when a template fails validation.
	ErrInvalidTemplate = errors.New("invalid template")
)

// Store is the SQLite-backed catalog.
type Store struct {
	db *sql.DB
}

// NewStore returns a catalog backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	return name, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
