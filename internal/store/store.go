package store

import "encoding/json"

// Document is a schemaless record as held by the store. Values carry JSON
// types (string, float64, bool, map, slice) regardless of which backend
// stored them.
type Document map[string]interface{}

// Filter is an exact-match predicate over named fields, AND-combined.
type Filter map[string]interface{}

// Store is the generic document collection API. Query with a nil filter
// returns the whole collection. Both implementations return documents in
// insertion order, so "last one wins" joins behave deterministically.
type Store interface {
	Create(collection string, doc Document) (Document, error)
	Query(collection string, filter Filter) ([]Document, error)
	Collections() ([]string, error)
}

// ToDocument converts a typed record into a Document via a JSON round-trip,
// which normalizes field names to their json tags and numbers to float64.
func ToDocument(v interface{}) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// String returns the named field as a string, or "" when absent or not a
// string. Accessors default rather than error so that joins over missing
// records degrade the same way the dashboard expects.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Int returns the named field as an int, or 0 when absent.
func (d Document) Int(key string) int {
	return d.IntOr(key, 0)
}

// IntOr returns the named field as an int, or def when absent.
func (d Document) IntOr(key string, def int) int {
	switch v := d[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// Float returns the named field as a float64, or 0 when absent.
func (d Document) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return 0
}

// Bool returns the named field as a bool, or false when absent.
func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Map returns the named field as a nested Document, or nil when absent.
func (d Document) Map(key string) Document {
	m, _ := d[key].(map[string]interface{})
	return Document(m)
}

// Has reports whether the named field is present at all.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}
