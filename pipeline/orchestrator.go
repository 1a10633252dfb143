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

package pipeline

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/qaforge/classify"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/generate"
)

// DefaultBatchSize is the number of question segments processed per batch
// when running in batched mode.
const DefaultBatchSize = 15

// Status reports what a run produced.
type Status int

const (
	// StatusCompleted means the run processed segments and produced pairs
	// (possibly zero, when every candidate failed downstream).
	StatusCompleted Status = iota

	// StatusNoSegments means there was nothing to process.
	StatusNoSegments

	// StatusNoQuestions means segments were processed but question
	// generation produced no candidates.
	StatusNoQuestions
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusNoSegments:
		return "no segments"
	case StatusNoQuestions:
		return "no questions"
	default:
		return "unknown"
	}
}

// Result is the outcome of a run.
type Result struct {
	Pairs  []core.QAPair
	Status Status
}

// Orchestrator drives the question/answer generation stages over segmented
// documents. Each stage fans out on a shared worker pool and completes
// fully before the next stage starts; failures of individual tasks are
// logged and dropped without affecting siblings.
type Orchestrator struct {
	elicitor    *generate.Elicitor
	synthesizer *generate.Synthesizer
	classifier  *classify.Classifier
	pool        *ants.Pool
	progress    io.Writer
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithPoolSize sets the worker pool size for concurrent stage processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *Orchestrator) error {
		if size < 1 {
			size = 1
		}

		if o.pool != nil {
			o.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		o.pool = pool
		return nil
	}
}

// WithClassifier enables the taxonomy classification stage. Without it,
// pairs keep the default labels the synthesizer applies.
func WithClassifier(classifier *classify.Classifier) Option {
	return func(o *Orchestrator) error {
		o.classifier = classifier
		return nil
	}
}

// WithProgress sets a writer for per-stage progress output.
// Default is no progress output.
func WithProgress(w io.Writer) Option {
	return func(o *Orchestrator) error {
		o.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates an orchestrator over the given stages.
func NewOrchestrator(
	elicitor *generate.Elicitor,
	synthesizer *generate.Synthesizer,
	opts ...Option,
) (*Orchestrator, error) {
	if elicitor == nil {
		return nil, ErrElicitorRequired
	}
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		elicitor:    elicitor,
		synthesizer: synthesizer,
		pool:        pool,
		logger:      slog.Default().With("component", "orchestrator"),
	}

	for _, opt := range opts {
		if optErr := opt(o); optErr != nil {
			o.Release()
			return nil, optErr
		}
	}

	return o, nil
}

// Run processes all question segments in one pass: elicit questions, answer
// each against the answer-segment pool, then classify. The answer pool is
// shared across all questions.
func (o *Orchestrator) Run(ctx context.Context, questionSegments, answerSegments []core.Segment) (*Result, error) {
	if len(questionSegments) == 0 {
		o.logger.Warn("no segments to process")
		return &Result{Pairs: []core.QAPair{}, Status: StatusNoSegments}, nil
	}

	questions := o.elicitAll(ctx, questionSegments)
	if len(questions) == 0 {
		o.logger.Warn("no questions generated", "segments", len(questionSegments))
		return &Result{Pairs: []core.QAPair{}, Status: StatusNoQuestions}, nil
	}

	pairs := o.synthesizeAll(ctx, questions, answerSegments)
	o.classifyAll(ctx, pairs)

	o.logger.Info("run complete",
		"segments", len(questionSegments), "questions", len(questions), "pairs", len(pairs))

	return &Result{Pairs: pairs, Status: StatusCompleted}, nil
}

// RunBatches processes question segments in fixed-size batches, invoking
// handle with each batch's pairs as soon as the batch completes so callers
// can persist intermediate output. A handler error aborts the run; stage
// failures inside a batch are logged and dropped as in Run.
func (o *Orchestrator) RunBatches(
	ctx context.Context,
	questionSegments, answerSegments []core.Segment,
	batchSize int,
	handle func(batch []core.QAPair) error,
) (*Result, error) {
	if len(questionSegments) == 0 {
		o.logger.Warn("no segments to process")
		return &Result{Pairs: []core.QAPair{}, Status: StatusNoSegments}, nil
	}
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	var all []core.QAPair
	anyQuestions := false

	for start := 0; start < len(questionSegments); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + batchSize
		if end > len(questionSegments) {
			end = len(questionSegments)
		}
		batch := questionSegments[start:end]

		o.logger.Info("processing batch",
			"from", start, "to", end, "total", len(questionSegments))

		questions := o.elicitAll(ctx, batch)
		if len(questions) == 0 {
			continue
		}
		anyQuestions = true

		pairs := o.synthesizeAll(ctx, questions, answerSegments)
		o.classifyAll(ctx, pairs)

		if len(pairs) > 0 && handle != nil {
			if err := handle(pairs); err != nil {
				return nil, err
			}
		}
		all = append(all, pairs...)
	}

	if !anyQuestions {
		return &Result{Pairs: []core.QAPair{}, Status: StatusNoQuestions}, nil
	}
	if all == nil {
		all = []core.QAPair{}
	}
	return &Result{Pairs: all, Status: StatusCompleted}, nil
}

// elicitAll fans the question stage out over the pool. Results land in
// per-segment slots so question order follows segment order regardless of
// completion order. Overlapping segments may elicit the same question more
// than once; every occurrence is kept and answered.
func (o *Orchestrator) elicitAll(ctx context.Context, segments []core.Segment) []string {
	tracker := newProgressTracker(o.progress, "questions", len(segments))
	slots := make([][]string, len(segments))

	var wg sync.WaitGroup
	for i, segment := range segments {
		wg.Add(1)
		if err := o.pool.Submit(func() {
			defer wg.Done()
			defer tracker.Increment(1)

			questions, err := o.elicitor.Elicit(ctx, segment)
			if err != nil {
				o.logger.Error("dropping segment", "source", segment.Source, "page", segment.Page, "err", err)
				return
			}
			slots[i] = questions
		}); err != nil {
			wg.Done()
			tracker.Increment(1)
			o.logger.Error("submit failed, dropping segment", "source", segment.Source, "err", err)
		}
	}
	wg.Wait()
	tracker.Finish()

	var questions []string
	for _, slot := range slots {
		questions = append(questions, slot...)
	}
	return questions
}

// synthesizeAll fans the answer stage out over the pool. Questions that fail
// or select no context produce no pair.
func (o *Orchestrator) synthesizeAll(ctx context.Context, questions []string, answerSegments []core.Segment) []core.QAPair {
	tracker := newProgressTracker(o.progress, "answers", len(questions))
	slots := make([]*core.QAPair, len(questions))

	var wg sync.WaitGroup
	for i, question := range questions {
		wg.Add(1)
		if err := o.pool.Submit(func() {
			defer wg.Done()
			defer tracker.Increment(1)

			pair, err := o.synthesizer.Synthesize(ctx, question, answerSegments)
			if err != nil {
				o.logger.Error("dropping question", "question", question, "err", err)
				return
			}
			slots[i] = pair
		}); err != nil {
			wg.Done()
			tracker.Increment(1)
			o.logger.Error("submit failed, dropping question", "question", question, "err", err)
		}
	}
	wg.Wait()
	tracker.Finish()

	pairs := make([]core.QAPair, 0, len(slots))
	for _, pair := range slots {
		if pair != nil {
			pairs = append(pairs, *pair)
		}
	}
	return pairs
}

// classifyAll labels pairs in place. No-op without a classifier; the
// classifier itself never fails past its boundary, so every pair ends up
// labeled.
func (o *Orchestrator) classifyAll(ctx context.Context, pairs []core.QAPair) {
	if o.classifier == nil || len(pairs) == 0 {
		return
	}

	tracker := newProgressTracker(o.progress, "classification", len(pairs))

	var wg sync.WaitGroup
	for i := range pairs {
		wg.Add(1)
		if err := o.pool.Submit(func() {
			defer wg.Done()
			defer tracker.Increment(1)

			pairs[i].Apply(o.classifier.Classify(ctx, pairs[i].Question, pairs[i].Answer))
		}); err != nil {
			wg.Done()
			tracker.Increment(1)
			o.logger.Error("submit failed, pair keeps default labels", "question", pairs[i].Question, "err", err)
		}
	}
	wg.Wait()
	tracker.Finish()
}

// Release releases the worker pool.
// The orchestrator should not be used after calling Release.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}
