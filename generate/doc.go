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


// Package generate holds the two LLM-backed steps of the pipeline:
// eliciting candidate questions from fine-grained segments and synthesizing
// grounded answers from coarse context segments.
//
// Both steps return errors to their caller instead of swallowing them; the
// orchestrator converts a failed task into a dropped item so sibling tasks
// are unaffected.
package generate
