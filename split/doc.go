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


// Package split turns page-level documents into the two chunk sets the
// generation pipeline consumes: fine-grained segments for question
// elicitation and coarser segments for answer grounding.
//
// Two strategies are provided. Splitter performs fixed-size recursive
// character splitting (the default), SemanticSplitter places boundaries at
// embedding-distance breakpoints. Both preserve source and page provenance
// through every pass.
package split
