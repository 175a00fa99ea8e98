// SPDX-License-Identifier: Apache-2.0

// Package syntax checks that a piece of text is a well-formed JSON document.
// Only the grammar is checked; the decoded value is discarded.
package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ParseError describes the first point at which text stopped following the
// JSON grammar.
type ParseError struct {
	Msg string
	// Offset is the 0-based byte offset of the violation.
	Offset int
	Line   int
	Column int
	// Char is the 0-based rune offset of the violation.
	Char int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Char)
}

// Check returns nil if text is a single well-formed JSON value, optionally
// surrounded by whitespace. Any other input, including the empty string,
// yields a *ParseError. Numbers are checked against the grammar only, so
// values outside the float64 range are accepted.
func Check(text string) error {
	data := []byte(text)
	if json.Valid(data) {
		return nil
	}

	// Unmarshal runs the same scanner as Valid before decoding, so invalid
	// input always fails with a *json.SyntaxError.
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return fmt.Errorf("checking JSON syntax: %w", err)
	}

	// SyntaxError.Offset counts the bytes read including the offending one,
	// except when the input ran out and nothing is left to blame.
	pos := int(se.Offset)
	if pos > 0 && !(se.Offset == int64(len(data)) && truncated(data)) {
		pos--
	}
	return newParseError(text, se.Error(), pos)
}

// truncated reports whether data is a prefix of a JSON value that ended
// before the value was complete.
func truncated(data []byte) bool {
	err := json.NewDecoder(bytes.NewReader(data)).Decode(new(json.RawMessage))
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func newParseError(text, msg string, pos int) *ParseError {
	pos = min(max(pos, 0), len(text))
	head := text[:pos]
	line := strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	return &ParseError{
		Msg:    msg,
		Offset: pos,
		Line:   line,
		Column: utf8.RuneCountInString(head[lineStart:]) + 1,
		Char:   utf8.RuneCountInString(head),
	}
}
