// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/ai/openai"
	"github.com/poiesic/qaforge/classify"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/export"
	"github.com/poiesic/qaforge/generate"
	"github.com/poiesic/qaforge/ingest"
	"github.com/poiesic/qaforge/pipeline"
	"github.com/poiesic/qaforge/relevance"
	"github.com/poiesic/qaforge/split"
	"github.com/poiesic/qaforge/taxonomy"
)

func main() {
	// Optional .env for the Azure credentials; a missing file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "qaforge",
		Usage: "Generate provenance-tagged Q&A pairs from source documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Generate Q&A pairs from documents and export them to a spreadsheet",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input document path (repeatable)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output spreadsheet path",
						Value:   "qa_pairs.xlsx",
					},
					&cli.StringFlag{
						Name:  "taxonomy",
						Usage: "Taxonomy definitions spreadsheet; enables classification",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size (0 uses half the CPU count)",
					},
					&cli.StringFlag{
						Name:  "selector",
						Usage: "Relevance selector (lexical, embedding)",
						Value: "lexical",
					},
					&cli.IntFlag{
						Name:  "question-chunk-size",
						Usage: "Question segment size in characters",
						Value: split.DefaultQuestionChunkSize,
					},
					&cli.IntFlag{
						Name:  "question-chunk-overlap",
						Usage: "Question segment overlap in characters",
						Value: split.DefaultQuestionChunkOverlap,
					},
					&cli.IntFlag{
						Name:  "answer-chunk-size",
						Usage: "Answer segment size in characters",
						Value: split.DefaultAnswerChunkSize,
					},
					&cli.IntFlag{
						Name:  "answer-chunk-overlap",
						Usage: "Answer segment overlap in characters",
						Value: split.DefaultAnswerChunkOverlap,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Question segments per batch",
						Value: pipeline.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for generation calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.StringFlag{
						Name:    "endpoint",
						Usage:   "OpenAI-compatible service endpoint",
						EnvVars: []string{"AZURE_OPENAI_ENDPOINT", "OPENAI_ENDPOINT"},
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Service API key",
						EnvVars: []string{"AZURE_OPENAI_API_KEY", "OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "deployment",
						Usage:   "Chat model deployment",
						EnvVars: []string{"AZURE_OPENAI_DEPLOYMENT"},
					},
					&cli.StringFlag{
						Name:    "embedding-deployment",
						Usage:   "Embedding model deployment (needed for --selector embedding)",
						EnvVars: []string{"AZURE_OPENAI_EMBEDDING_DEPLOYMENT"},
					},
					&cli.StringFlag{
						Name:    "api-version",
						Usage:   "Azure OpenAI API version",
						EnvVars: []string{"AZURE_OPENAI_API_VERSION"},
						Value:   "2024-02-01",
					},
					&cli.BoolFlag{
						Name:    "azure",
						Usage:   "Use the Azure OpenAI API surface",
						EnvVars: []string{"AZURE_OPENAI"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func generateCommand(c *cli.Context) error {
	ctx := context.Background()

	provider, err := buildProvider(c)
	if err != nil {
		return err
	}
	defer provider.Close()

	selector, err := buildSelector(c, provider)
	if err != nil {
		return err
	}

	// Load and segment the documents.
	loader, err := ingest.NewLoader(loaderOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}
	defer loader.Release()

	documents, err := loader.Load(ctx, c.StringSlice("input"))
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	splitter := split.NewSplitter(
		split.WithQuestionChunk(c.Int("question-chunk-size"), c.Int("question-chunk-overlap")),
		split.WithAnswerChunk(c.Int("answer-chunk-size"), c.Int("answer-chunk-overlap")),
	)
	questionSegments, answerSegments := splitter.Split(documents)

	// Assemble the generation stages.
	elicitor, err := generate.NewElicitor(provider.Generator(), c.Int("max-retries"), c.Duration("retry-delay"))
	if err != nil {
		return fmt.Errorf("failed to create elicitor: %w", err)
	}

	synthesizer, err := generate.NewSynthesizer(provider.Generator(), selector,
		c.Int("max-retries"), c.Duration("retry-delay"))
	if err != nil {
		return fmt.Errorf("failed to create synthesizer: %w", err)
	}

	orchestratorOpts := []pipeline.Option{pipeline.WithProgress(os.Stderr)}
	if c.Int("workers") > 0 {
		orchestratorOpts = append(orchestratorOpts, pipeline.WithPoolSize(c.Int("workers")))
	}

	classifying := c.String("taxonomy") != ""
	if classifying {
		hierarchy := taxonomy.LoadOrFallback(c.String("taxonomy"))
		classifier, err := classify.NewClassifier(provider.Generator(), hierarchy)
		if err != nil {
			return fmt.Errorf("failed to create classifier: %w", err)
		}
		orchestratorOpts = append(orchestratorOpts, pipeline.WithClassifier(classifier))
	}

	orchestrator, err := pipeline.NewOrchestrator(elicitor, synthesizer, orchestratorOpts...)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orchestrator.Release()

	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(documents))
	fmt.Fprintf(os.Stderr, "Question segments: %d\n", len(questionSegments))
	fmt.Fprintf(os.Stderr, "Answer segments: %d\n", len(answerSegments))
	fmt.Fprintln(os.Stderr)

	result, err := orchestrator.RunBatches(ctx, questionSegments, answerSegments,
		c.Int("batch-size"), func(batch []core.QAPair) error {
			fmt.Fprintf(os.Stderr, "Batch complete: %d pairs\n", len(batch))
			return nil
		})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	switch result.Status {
	case pipeline.StatusNoSegments:
		fmt.Fprintln(os.Stderr, "No text could be extracted from the input documents; nothing to do.")
		return nil
	case pipeline.StatusNoQuestions:
		fmt.Fprintln(os.Stderr, "No questions could be generated from the input documents; nothing to export.")
		return nil
	}

	exporterOpts := []export.Option{}
	if classifying {
		exporterOpts = append(exporterOpts, export.WithTaxonomy())
	}

	written, err := export.NewExporter(exporterOpts...).Export(result.Pairs, c.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nWrote %d pairs to %s\n", len(result.Pairs), written)
	return nil
}

func buildProvider(c *cli.Context) (ai.Provider, error) {
	opts := []ai.ConfigOption{
		ai.WithAzure(c.Bool("azure")),
		ai.WithAPIVersion(c.String("api-version")),
		ai.WithEmbeddingDeployment(c.String("embedding-deployment")),
	}
	if c.String("endpoint") != "" {
		opts = append(opts, ai.WithEndpoint(c.String("endpoint")))
	}
	if c.String("api-key") != "" {
		opts = append(opts, ai.WithAPIKey(c.String("api-key")))
	}
	if c.String("deployment") != "" {
		opts = append(opts, ai.WithDeployment(c.String("deployment")))
	}

	config := ai.NewConfig(opts...)
	provider, err := openai.NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return provider, nil
}

func buildSelector(c *cli.Context, provider ai.Provider) (relevance.Selector, error) {
	switch c.String("selector") {
	case "lexical":
		return relevance.NewWithFallback(relevance.NewTFIDF()), nil
	case "embedding":
		embedder := provider.Embedder()
		if embedder == nil {
			return nil, fmt.Errorf("--selector embedding requires --embedding-deployment")
		}
		return relevance.NewWithFallback(relevance.NewEmbedding(embedder)), nil
	default:
		return nil, fmt.Errorf("invalid selector %q: must be one of lexical, embedding", c.String("selector"))
	}
}

func loaderOptions(c *cli.Context) []ingest.Option {
	if c.Int("workers") > 0 {
		return []ingest.Option{ingest.WithPoolSize(c.Int("workers"))}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
