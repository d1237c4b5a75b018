// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file in the working directory (read with godotenv, never
//     exported to the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetCLIConfig] for command-line tools that parse their own flags.
package config
