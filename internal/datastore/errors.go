package datastore

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is joined with the underlying fs error when a source
// file or the transactions directory does not exist.
var ErrSourceNotFound = errors.New("source not found")

// DateParseError reports a date matching none of the accepted layouts.
// File and Row are empty when the value was parsed outside a file load.
type DateParseError struct {
	File  string
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("unparseable date %q", e.Value)
	}
	return fmt.Sprintf("%s row %d: unparseable date %q", e.File, e.Row, e.Value)
}

type MissingKeyColumnError struct {
	File   string
	Column string
}

func (e *MissingKeyColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

type FieldParseError struct {
	File   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("%s row %d: invalid %s value %q: %v", e.File, e.Row, e.Column, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
