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


// Package relevance matches a generated question back to the source segments
// most likely to ground its answer.
//
// Two interchangeable strategies implement the Selector interface: TFIDF
// scores by lexical cosine similarity over a shared vocabulary, Embedding
// asks the external embedding capability for nearest neighbors. Production
// use wraps either in NewWithFallback, which degrades to the first segments
// in pool order when scoring fails instead of propagating the error.
package relevance
