package database

import (
	"encoding/json"
	"fmt"

	"wearable-backend/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PostgresStore implements store.Store on top of the documents table.
// Exact-match filters map onto JSONB containment (doc @> filter), and
// ORDER BY id preserves insertion order across queries.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Create(collection string, doc store.Document) (store.Document, error) {
	stored := make(store.Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	if !stored.Has("_id") {
		stored["_id"] = uuid.New().String()
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	// lib/pq sends []byte as bytea, which does not coerce to jsonb, so the
	// document travels as text.
	if _, err := p.db.Exec(
		`INSERT INTO documents (collection, doc) VALUES ($1, $2::jsonb)`,
		collection, string(raw),
	); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	// Hand back the JSON-normalized form so callers see the same value
	// types a later Query would return.
	var out store.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) Query(collection string, filter store.Filter) ([]store.Document, error) {
	var (
		rows *sqlx.Rows
		err  error
	)
	if len(filter) == 0 {
		rows, err = p.db.Queryx(
			`SELECT doc FROM documents WHERE collection = $1 ORDER BY id`,
			collection,
		)
	} else {
		var predicate []byte
		predicate, err = json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		rows, err = p.db.Queryx(
			`SELECT doc FROM documents WHERE collection = $1 AND doc @> $2::jsonb ORDER BY id`,
			collection, string(predicate),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	results := make([]store.Document, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		var doc store.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		results = append(results, doc)
	}
	return results, rows.Err()
}

func (p *PostgresStore) Collections() ([]string, error) {
	names := make([]string, 0)
	if err := p.db.Select(&names,
		`SELECT DISTINCT collection FROM documents ORDER BY collection`,
	); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
