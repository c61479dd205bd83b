// Package config provides configuration structures and utilities for the
// word counter. It defines the worker and trial settings, report output
// preferences, and the optional YAML configuration file that supplies
// defaults for them.
package config
