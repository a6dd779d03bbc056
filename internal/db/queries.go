package db

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/errors"
)

// Insert stores a new entry. The id (content hash) and value carry UNIQUE
// constraints, so resubmitting the same string fails with ALREADY_EXISTS.
func Insert(db *sql.DB, e *entry.Entry) error {
	propsJSON, err := json.Marshal(e.Properties)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO strings (id, value, properties_json, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err = db.Exec(query, e.ID, e.Value, string(propsJSON), e.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return errors.NewAlreadyExists(e.ID)
		}
		return errors.NewInternal(err)
	}

	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetByID retrieves an entry by its content hash.
func GetByID(db *sql.DB, id string) (*entry.Entry, error) {
	query := `
		SELECT id, value, properties_json, created_at
		FROM strings
		WHERE id = ?
	`

	row := db.QueryRow(query, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return e, nil
}

// GetByValue retrieves an entry by its exact original string.
func GetByValue(db *sql.DB, value string) (*entry.Entry, error) {
	query := `
		SELECT id, value, properties_json, created_at
		FROM strings
		WHERE value = ?
	`

	row := db.QueryRow(query, value)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(value)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return e, nil
}

// Delete removes an entry by id. Deletion is terminal; there is no soft
// delete because entries carry no mutable state worth recovering.
func Delete(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM strings WHERE id = ?`, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// ListAll returns every stored entry, oldest first. Filtering happens
// in memory in the ops layer, so this is a plain full scan.
func ListAll(db *sql.DB) ([]entry.Entry, error) {
	query := `
		SELECT id, value, properties_json, created_at
		FROM strings
		ORDER BY created_at ASC, id ASC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		var (
			e         entry.Entry
			propsJSON string
		)
		if err := rows.Scan(&e.ID, &e.Value, &propsJSON, &e.CreatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		if err := json.Unmarshal([]byte(propsJSON), &e.Properties); err != nil {
			return nil, errors.NewInternal(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return entries, nil
}

// scanEntry scans a single row into an Entry struct.
func scanEntry(row *sql.Row) (*entry.Entry, error) {
	var (
		e         entry.Entry
		propsJSON string
	)

	err := row.Scan(&e.ID, &e.Value, &propsJSON, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(propsJSON), &e.Properties); err != nil {
		return nil, err
	}

	return &e, nil
}
