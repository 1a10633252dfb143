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


// Package ai provides abstractions for the AI services used in QAForge.
//
// This package defines interfaces for the two external capabilities the
// generation pipeline depends on: text generation and text embeddings.
// It follows the dependency inversion principle, allowing the core pipeline
// to depend on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - TextGenerator: produces text from a prompt (question elicitation,
//     answer synthesis, taxonomy classification)
//   - Embedder: generates vector embeddings from text (embedding-based
//     relevance selection and semantic splitting)
//   - Provider: aggregates both services for convenient initialization
//
// Both capabilities are blocking calls from the caller's perspective; one
// call in flight is the pipeline's unit of concurrency.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs,
//     including Azure OpenAI deployments
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewGenerator, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockGenerator, mock.NewMockEmbedder)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields (GenerateFunc, CallCount, Reset).
//
// # Usage Example
//
//	config := ai.NewConfig(
//	    ai.WithEndpoint(endpoint),
//	    ai.WithAPIKey(key),
//	    ai.WithDeployment("gpt-4o-mini"),
//	    ai.WithEmbeddingDeployment("text-embedding-3-small"),
//	    ai.WithAzure(true),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Generator().Generate(ctx, prompt)
//	vectors, err := provider.Embedder().EmbedTexts(ctx, texts)
package ai
