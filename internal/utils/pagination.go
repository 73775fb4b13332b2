// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// Pagination carries the metadata attached to every list response.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampPage parses a page query value; pages are 1-based.
func ClampPage(s string) int {
	page := AtoiDefault(s, 1)
	if page < 1 {
		page = 1
	}
	return page
}

// ClampLimit parses a limit query value, applying the resource default and an
// optional upper cap (max <= 0 disables the cap).
func ClampLimit(s string, def, max int) int {
	limit := AtoiDefault(s, def)
	if limit < 1 {
		limit = 1
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewPagination assembles the response metadata for a list page.
func NewPagination(total int64, page, limit int) Pagination {
	return Pagination{
		Total:       total,
		TotalPages:  TotalPages(total, limit),
		CurrentPage: page,
		Limit:       limit,
	}
}
