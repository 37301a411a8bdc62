// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates quilldoc configuration. Config files
// are CUE, validated against an embedded schema and merged into Viper so
// environment variables can override individual fields.
package config
