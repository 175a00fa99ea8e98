// SPDX-License-Identifier: Apache-2.0

// Package jsonld finds JSON-LD blocks embedded in HTML pages and reports
// whether each one is well-formed JSON.
package jsonld

import (
	"errors"

	"github.com/gemaraproj/jsonld-check/internal/jsonld/syntax"
)

// DefaultTargets are the pages checked by a plain run, relative to the
// working directory, in the order they are processed.
var DefaultTargets = []string{"index.html", "about.html", "what-we-do.html"}

// ErrNotText is returned when a target file is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// Source describes one HTML document handed to the validator.
type Source struct {
	// ID is the file path, or a caller-supplied label for in-memory content.
	ID      string
	Content []byte
}

// Block is the trimmed body of one <script type="application/ld+json"> element.
type Block struct {
	// Index is 1-based, in document order.
	Index int
	// Offset is the byte offset of the untrimmed body within the source.
	Offset int
	Body   string
}

// BlockResult is the syntax check outcome for one block.
type BlockResult struct {
	Index int
	Err   *syntax.ParseError
}

// Valid reports whether the block parsed as JSON.
func (r BlockResult) Valid() bool {
	return r.Err == nil
}

// FileReport holds the outcome for every block found in one source.
type FileReport struct {
	Source string
	Blocks []BlockResult
}

// Valid reports whether every block parsed. A report with no blocks is valid.
func (r FileReport) Valid() bool {
	for _, b := range r.Blocks {
		if !b.Valid() {
			return false
		}
	}
	return true
}

// Empty reports whether no JSON-LD blocks were found.
func (r FileReport) Empty() bool {
	return len(r.Blocks) == 0
}
