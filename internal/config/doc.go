// Package config provides configuration management for the MindLink server.
//
// # Overview
//
// The config package uses Viper to load configuration from YAML files and
// environment variables. It provides a type-safe configuration structure with
// default values and automatic file creation.
//
// # Configuration File
//
// The configuration is stored at ~/.mindlink/config.yaml and is automatically
// created with sensible defaults on first use. The file structure mirrors
// the Go structs defined in this package.
//
// # Environment Variables
//
// All configuration values can be overridden using environment variables
// with the MINDLINK_ prefix. Nested fields are separated by underscores.
//
// Examples:
//   - MINDLINK_LLM_DEFAULT_PROVIDER=openai
//   - MINDLINK_LLM_PROVIDERS_OPENAI_API_KEY=sk-...
//   - MINDLINK_SERVER_PORT=8080
//   - MINDLINK_LOGGING_LEVEL=debug
//
// The bare ANTHROPIC_API_KEY and OPENAI_API_KEY variables are also honored
// by the provider factory, and PORT is honored for PaaS deployments.
package config
