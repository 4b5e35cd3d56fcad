// Package config provides configuration management for the complymap
// server and CLI.
//
// Configuration is loaded from a YAML file (complymap.yml under
// COMPLYMAP_CONFIG_PATH, defaulting to /etc/complymap/config) and then
// overridden by COMPLYMAP_* environment variables. Each attribute tracks
// the source it was resolved from: default, file, or environment.
package config
