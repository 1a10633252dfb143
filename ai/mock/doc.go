// Package mock provides test doubles for the ai interfaces.
//
// Mocks default to deterministic behavior (the generator echoes prompts,
// the embedder derives vectors from an FNV hash of the input) and support
// behavior injection through public function fields.
package mock
