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


// Package taxonomy loads the three-level classification hierarchy from a
// spreadsheet definitions table.
//
// The hierarchy is descriptive context for the classifier's prompt, nothing
// more: classifier output is never clamped to the loaded label set, so the
// model may return labels outside it. Callers that need strict labels must
// validate downstream.
package taxonomy
