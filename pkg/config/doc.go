// Package config loads, validates and watches termbrot configuration files.
package config
