// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"
)

var (
	ErrNotFound        = errors.New("catalog: not found")
	ErrInvalidItem     = errors.New("catalog: invalid item")
	ErrInvalidCategory = errors.New("catalog: invalid category")
)

// Category is the fixed category set of the jewelry catalog.
// "all" is a filter value only and is never stored on an item.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryNecklace Category = "necklace"
	CategoryBangle   Category = "bangle"
	CategoryEarring  Category = "earring"
	CategoryRing     Category = "ring"
)

// ParseCategory normalizes a category filter value.
// Empty input means "all".
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryNecklace:
		return CategoryNecklace, nil
	case CategoryBangle:
		return CategoryBangle, nil
	case CategoryEarring:
		return CategoryEarring, nil
	case CategoryRing:
		return CategoryRing, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Item is an immutable product descriptor.
// Created/edited only via the admin surface; read-only everywhere else.
type Item struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Price       float64  `json:"price" firestore:"price"`
	ImageURI    string   `json:"imageUri" firestore:"imageUri"`
	Description string   `json:"description" firestore:"description"`
	Category    Category `json:"category" firestore:"category"`
	Details     string   `json:"details,omitempty" firestore:"details,omitempty"`
}

// Validate checks the invariants an item must hold before it is stored.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidItem
	}
	if i.Price < 0 {
		return ErrInvalidItem
	}
	if i.Category == "" || i.Category == CategoryAll {
		return ErrInvalidCategory
	}
	if _, err := ParseCategory(string(i.Category)); err != nil {
		return err
	}
	return nil
}
