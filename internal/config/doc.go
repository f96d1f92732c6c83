// Package config loads runtime configuration for the Pressroom console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-p int      list page size
//	-d string   download directory
//
// # JSON schema
//
// Durations accept either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://cms.example.com",
//	  "request_timeout": "15s",
//	  "page_size": 10,
//	  "download_dir": "download"
//	}
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
