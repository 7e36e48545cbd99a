// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package migrateslog provides helpers for logging migration outcomes with log/slog.
package migrateslog

import "log/slog"

// SourceVersion returns a [slog.Attr] for the version detected in the input document.
func SourceVersion(v int64) slog.Attr {
	return slog.Int64("config_source_version", v)
}

// LatestVersion returns a [slog.Attr] for the chain's latest version.
func LatestVersion(v int64) slog.Attr {
	return slog.Int64("config_latest_version", v)
}

// Migrated returns a [slog.Attr] reporting whether any conversions were applied.
func Migrated(b bool) slog.Attr {
	return slog.Bool("config_migrated", b)
}

// VersionKey returns a [slog.Attr] for the field name holding the version identifier.
func VersionKey(k string) slog.Attr {
	return slog.String("config_version_key", k)
}
