// SPDX-License-Identifier: Apache-2.0

package jsonld

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/gemaraproj/jsonld-check/internal/jsonld/syntax"
)

// Validator checks the JSON-LD blocks of HTML files and writes one report
// line per event.
type Validator struct {
	reporter *Reporter
	log      *zap.Logger
}

// NewValidator creates a Validator writing report lines to out.
// A nil logger disables diagnostics.
func NewValidator(out io.Writer, log *zap.Logger) *Validator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Validator{
		reporter: NewReporter(out),
		log:      log,
	}
}

// ValidateSource extracts and checks every block of src. It never stops at
// the first invalid block.
func (v *Validator) ValidateSource(src Source) FileReport {
	report := FileReport{Source: src.ID}
	for block := range Blocks(string(src.Content)) {
		result := BlockResult{Index: block.Index}
		if err := syntax.Check(block.Body); err != nil {
			var pe *syntax.ParseError
			if !errors.As(err, &pe) {
				pe = &syntax.ParseError{Msg: err.Error()}
			}
			result.Err = pe
			v.log.Debug("invalid block",
				zap.String("source", src.ID),
				zap.Int("block", block.Index),
				zap.Int("offset", block.Offset),
				zap.Error(err))
		}
		report.Blocks = append(report.Blocks, result)
	}
	v.log.Debug("checked source",
		zap.String("source", src.ID),
		zap.Int("blocks", len(report.Blocks)),
		zap.Bool("valid", report.Valid()))
	return report
}

// ValidateFile reads path, checks it and writes its report lines.
// It returns the file's aggregate validity. An error means the file could
// not be read as text; nothing is reported for it in that case.
func (v *Validator) ValidateFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return false, fmt.Errorf("reading %s: %w", path, ErrNotText)
	}
	v.log.Debug("read file", zap.String("path", path), zap.Int("bytes", len(content)))

	report := v.ValidateSource(Source{ID: path, Content: content})
	if err := v.reporter.File(report); err != nil {
		return false, fmt.Errorf("writing report for %s: %w", path, err)
	}
	return report.Valid(), nil
}

// Run checks every path in order and writes the summary line.
// Every file is processed even after an invalid one. The first read error
// aborts the run before the summary is written.
func (v *Validator) Run(paths []string) (bool, error) {
	allValid := true
	for _, path := range paths {
		valid, err := v.ValidateFile(path)
		if err != nil {
			v.log.Error("aborting run", zap.String("path", path), zap.Error(err))
			return false, err
		}
		allValid = allValid && valid
	}
	if err := v.reporter.Summary(allValid); err != nil {
		return false, fmt.Errorf("writing summary: %w", err)
	}
	return allValid, nil
}
