/*
 * Copyright 2025 Poiesic Systems
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/qaforge/core"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Q&A Pairs"

var baseHeader = []interface{}{"Question", "Answer", "Source Document(s)", "Page Number(s)"}

var taxonomyHeader = []interface{}{"Stack", "Category", "Subcategory"}

// Exporter writes Q&A pairs to a spreadsheet.
type Exporter struct {
	taxonomy bool
	logger   *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTaxonomy adds the Stack/Category/Subcategory columns to the output.
func WithTaxonomy() Option {
	return func(e *Exporter) {
		e.taxonomy = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExporter creates an exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		logger: slog.Default().With("component", "exporter"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the pairs to path as an xlsx workbook and returns the path
// actually written. A path without the .xlsx extension is coerced; missing
// parent directories are created.
func (e *Exporter) Export(pairs []core.QAPair, path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		path += ".xlsx"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", err
	}

	if err := e.writeRow(f, 1, baseHeaderRow(e.taxonomy)); err != nil {
		return "", err
	}
	for i, pair := range pairs {
		if err := e.writeRow(f, i+2, pairRow(pair, e.taxonomy)); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	e.logger.Info("exported pairs", "path", path, "pairs", len(pairs))
	return path, nil
}

func (e *Exporter) writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func baseHeaderRow(taxonomy bool) []interface{} {
	header := append([]interface{}{}, baseHeader...)
	if taxonomy {
		header = append(header, taxonomyHeader...)
	}
	return header
}

func pairRow(pair core.QAPair, taxonomy bool) []interface{} {
	row := []interface{}{pair.Question, pair.Answer, pair.Source, pair.Page}
	if taxonomy {
		row = append(row, pair.Stack, pair.Category, pair.Subcategory)
	}
	return row
}
