// SPDX-License-Identifier: Apache-2.0

package jsonld

import (
	"fmt"
	"io"
)

// Reporter writes the line-oriented check output.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// File writes the lines for one file: a notice when it has no blocks,
// otherwise one line per block in index order.
func (r *Reporter) File(report FileReport) error {
	if report.Empty() {
		_, err := fmt.Fprintf(r.w, "%s No JSON-LD blocks found\n", report.Source)
		return err
	}
	for _, b := range report.Blocks {
		var err error
		if b.Valid() {
			_, err = fmt.Fprintf(r.w, "%s Block %d: Valid JSON\n", report.Source, b.Index)
		} else {
			_, err = fmt.Fprintf(r.w, "%s Block %d: Invalid JSON - %s\n", report.Source, b.Index, b.Err)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the final aggregate line.
func (r *Reporter) Summary(allValid bool) error {
	_, err := fmt.Fprintf(r.w, "All JSON-LD blocks valid: %s\n", titleBool(allValid))
	return err
}

func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
