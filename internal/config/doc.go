// Package config assembles the settings of the go-echo-feed binaries.
//
// Layers, later ones overriding non-zero fields of earlier ones:
//
//	defaults -> environment (.env seeded) -> flags -> JSON file (-c / CONFIG)
//
// [GetClientConfig] is the entry point of every binary. It also loads the
// YAML variant description through [LoadVariant]. Positional arguments left
// after the flags are kept in Args.
package config
