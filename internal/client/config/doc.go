// Package config loads runtime settings for the fittrack CLI.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, then a JSON file (if -c/-config names one), then
// command-line flags.
package config
