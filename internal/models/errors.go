package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart is returned when a bill is requested from a cart with no
	// positive quantity.
	ErrEmptyCart = errors.New("cart has no items with a positive quantity")
)

// ValidationError reports malformed create/update input. Fields maps the
// offending field name to a message suitable for showing next to the field.
type ValidationError struct {
	Fields map[string]string
}

// Add records a message for field. The first message per field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// OrNil returns e when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports a reference to a missing record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// OutOfStockWarning signals that a requested quantity was clamped to the
// available stock. It is a warning, not an abort: the clamped quantity is
// still stored.
type OutOfStockWarning struct {
	ItemID string `json:"itemId"`
	Max    int    `json:"max"`
}

func (w *OutOfStockWarning) Error() string {
	return fmt.Sprintf("Only %d available", w.Max)
}
