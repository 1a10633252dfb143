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

package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/qaforge/core"
)

// Loader reads source documents into page segments. Files are loaded in
// parallel; a file that cannot be read is logged and skipped without
// affecting the others.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for parallel file loading.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a document loader.
func NewLoader(opts ...Option) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default().With("component", "loader"),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Load reads every path in parallel and returns the extracted segments in
// input-path order, one segment per page. PDF files get one segment per PDF
// page; anything else is read whole as a single segment with an unknown
// page. Unreadable files are logged and skipped. The only error is a
// cancelled context.
func (l *Loader) Load(ctx context.Context, paths []string) ([]core.Segment, error) {
	slots := make([][]core.Segment, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		if err := l.pool.Submit(func() {
			defer wg.Done()

			segments, err := loadFile(path)
			if err != nil {
				l.logger.Error("skipping file", "path", path, "err", err)
				return
			}
			l.logger.Debug("loaded file", "path", path, "segments", len(segments))
			slots[i] = segments
		}); err != nil {
			wg.Done()
			l.logger.Error("submit failed, skipping file", "path", path, "err", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var segments []core.Segment
	for _, slot := range slots {
		segments = append(segments, slot...)
	}
	return segments, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

func loadFile(path string) ([]core.Segment, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return loadPDF(path)
	}
	return loadPlainText(path)
}

// loadPDF extracts one segment per PDF page. Pages whose text cannot be
// extracted are skipped; page numbering stays aligned with the document.
func loadPDF(path string) ([]core.Segment, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	source := filepath.Base(path)

	var segments []core.Segment
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, core.Segment{
			Content: text,
			Source:  source,
			Page:    i,
		})
	}
	return segments, nil
}

func loadPlainText(path string) ([]core.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return []core.Segment{}, nil
	}
	return []core.Segment{{
		Content: text,
		Source:  filepath.Base(path),
		Page:    core.PageUnknown,
	}}, nil
}
