// Package config loads the engine's tunable parameters from an optional
// YAML file (SPEC_FULL.md §4.11), using gopkg.in/yaml.v3 the way the rest
// of the configuration-by-value module loads its inputs: into a plain
// struct, validated, then handed to the engine as an engine.Config field
// set. Command-line flags always take precedence over file values.
package config
