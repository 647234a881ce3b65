package numt

import (
	"errors"
	"fmt"
)

// LoadError means the catalog file could not be read at all: missing,
// unreadable, or its header lacks a required column.
type LoadError struct {
	// Path of the catalog file
	Path string

	// Err is the underlying cause
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError means one catalog row holds a coordinate that is missing or
// not an integer. Row is 1-based and counts the header.
type ParseError struct {
	Path   string
	Row    int
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("parse catalog %s: row %d: column %q is empty", e.Path, e.Row, e.Column)
	}
	return fmt.Sprintf("parse catalog %s: row %d: column %q: %q is not an integer", e.Path, e.Row, e.Column, e.Value)
}

// WriteError means the report could not be written to its destination.
// The destination is never left holding a partial report.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RenderError means the figure backend failed, ex: an output extension
// no plot writer supports.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render figure %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ClassifyError means an overlapping record matched none of the four
// overlap categories. The categories are exhaustive, so this is a guard
// against the conditions being edited apart, not an expected path.
type ClassifyError struct {
	Code   string
	Query  QueryRegion
	Record Record
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf(
		"record %s overlaps %s (mt %d-%d) but matched no overlap category",
		e.Code, e.Query, e.Record.MtStart, e.Record.MtEnd,
	)
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsLoadError reports whether err wraps a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
