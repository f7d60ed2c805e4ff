// Package config loads runtime configuration for the contacts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags and variables
//
//	-a string         SERVER_URL        base URL of the API (e.g. http://127.0.0.1:5001)
//	-timeout duration REQUEST_TIMEOUT   per-request timeout
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5001",
//	  "request_timeout": "5s"
//	}
package config
