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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// Endpoint is the base URL of the OpenAI-compatible service.
	// Example: "https://myresource.openai.azure.com" for Azure OpenAI,
	// "http://localhost:11434/v1" for a local server.
	Endpoint string

	// APIKey authenticates requests to the service.
	APIKey string

	// Deployment is the chat model deployment used for text generation.
	// Example: "gpt-4o-mini"
	Deployment string

	// EmbeddingDeployment is the embedding model deployment. Optional;
	// required only when embedding-based relevance selection or semantic
	// splitting is used.
	EmbeddingDeployment string

	// APIVersion is the Azure OpenAI API version. Ignored for non-Azure
	// endpoints. Default: "2024-02-01"
	APIVersion string

	// Azure selects the Azure OpenAI API surface instead of the plain
	// OpenAI-compatible one.
	Azure bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEndpoint sets the service endpoint URL.
func WithEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.Endpoint = endpoint
	}
}

// WithAPIKey sets the service API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithDeployment sets the chat model deployment identifier.
func WithDeployment(deployment string) ConfigOption {
	return func(c *Config) {
		c.Deployment = deployment
	}
}

// WithEmbeddingDeployment sets the embedding model deployment identifier.
func WithEmbeddingDeployment(deployment string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingDeployment = deployment
	}
}

// WithAPIVersion sets the Azure OpenAI API version.
func WithAPIVersion(version string) ConfigOption {
	return func(c *Config) {
		c.APIVersion = version
	}
}

// WithAzure selects the Azure OpenAI API surface.
func WithAzure(azure bool) ConfigOption {
	return func(c *Config) {
		c.Azure = azure
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service that requires no authentication.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:   "http://localhost:11434/v1",
		APIKey:     "none",
		Deployment: "qwen2.5:3b",
		APIVersion: "2024-02-01",
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithEndpoint("https://myresource.openai.azure.com"),
//	    ai.WithAPIKey(key),
//	    ai.WithDeployment("gpt-4o-mini"),
//	    ai.WithAzure(true),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// Trailing slashes are stripped from the endpoint so URL joining in the
// underlying client behaves consistently.
func (c *Config) Normalize() {
	c.Endpoint = strings.TrimSuffix(strings.TrimSpace(c.Endpoint), "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
// EmbeddingDeployment is not required here; constructors that need the
// embedding capability check it themselves.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Endpoint == "" {
		return errors.New("ai config: Endpoint is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.Deployment == "" {
		return errors.New("ai config: Deployment is required")
	}
	if c.Azure && c.APIVersion == "" {
		return errors.New("ai config: APIVersion is required for Azure endpoints")
	}
	return nil
}
