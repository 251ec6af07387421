// Package config provides configuration types and loading for scopeforge.
//
// # Layers
//
// Settings are assembled from four layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML file: --config PATH, or ./scopeforge.toml when present
//  3. SCOPEFORGE_* environment variables, after loading ./.env if present
//  4. Command-line flags that were set explicitly (applied by cmd)
//
// # Config File
//
//	output_dir = "~/engagements/acme/scope"
//	all_addresses = true
//	include_network = true
//	include_broadcast = true
//
//	[log]
//	verbose = false
//	json = false
//	file = "/var/log/scopeforge.log"
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
//
// # Environment
//
//	SCOPEFORGE_OUTPUT_DIR          SCOPEFORGE_INCLUDE_NETWORK
//	SCOPEFORGE_ALL_ADDRESSES       SCOPEFORGE_INCLUDE_BROADCAST
//	SCOPEFORGE_SUMMARY_ONLY        SCOPEFORGE_VERBOSE
//	SCOPEFORGE_FAIL_ON_EMPTY_SCOPE SCOPEFORGE_LOG_JSON
//	SCOPEFORGE_LOG_FILE
//
// # Validation
//
// Settings.Validate runs after all layers are applied.
package config
