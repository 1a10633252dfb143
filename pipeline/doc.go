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

// Package pipeline orchestrates question/answer generation over segmented
// documents.
//
// A run has up to three stages, each fanned out on a shared worker pool and
// finished before the next begins:
//
//  1. Question elicitation over the fine-grained question segments.
//  2. Answer synthesis: each question is answered against the pool of
//     coarse-grained answer segments.
//  3. Taxonomy classification, when a classifier is configured.
//
// Failures are contained at task granularity. A segment whose question
// generation fails, or a question whose answer fails, is logged and dropped;
// the rest of the run is unaffected. Batched runs hand completed batches to
// a caller-supplied handler so long runs can persist output incrementally.
package pipeline
