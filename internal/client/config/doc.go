// Package config loads runtime configuration for the ByteMe client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the local database file
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_path": "data/byteme.db",
//	  "log_level": "debug"
//	}
//
// Keys missing from the file keep their earlier values.
package config
