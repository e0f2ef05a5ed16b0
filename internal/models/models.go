package models

import "fmt"

// Record is one therapy-advice entry. Records carry arbitrary fields which
// pass through the pipeline untouched; only "contexts" is read and only
// "category" is written.
type Record map[string]any

// Document is an ordered collection of records. Order is preserved across
// the whole read-modify-write cycle.
type Document []Record

// Contexts returns the record's context labels in order. JSON decoding
// yields []any, records built in code may carry []string; both are handled.
// Non-string elements are stringified so an odd value still misses the
// category table instead of vanishing.
func (r Record) Contexts() []string {
	raw, ok := r["contexts"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		contexts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				contexts = append(contexts, s)
			} else {
				contexts = append(contexts, fmt.Sprint(item))
			}
		}
		return contexts
	default:
		return nil
	}
}

// Category returns the record's current category, or "" when unset.
func (r Record) Category() string {
	if category, ok := r["category"].(string); ok {
		return category
	}
	return ""
}

// SetCategory assigns the category field, overwriting any existing value.
func (r Record) SetCategory(category string) {
	r["category"] = category
}
