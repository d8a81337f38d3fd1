// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides type-safe
// access to the settings needed by the flashcard server and the study client
// while keeping configuration details separate from the generation pipeline.
package config
