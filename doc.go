// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confmigrate migrates configuration documents written against a
// historical schema version forward to the current schema.
//
// The package is built around two core abstractions:
//
//   - Chain: An immutable, ordered registry linking each schema version to
//     a conversion from its immediate predecessor
//   - Migrator: A reusable operator which detects a document's version,
//     decodes it into the matching schema and walks the chain forward
//
// Callers never dispatch on version numbers themselves. However many
// versions a chain registers, a document of any registered version always
// migrates to the latest schema with every intermediate conversion applied
// exactly once, in order.
//
// # Basic Usage
//
// Declare one schema type per version along with how each version is
// converted from the one before it:
//
//	chain, err := confmigrate.NewChain(
//	    confmigrate.SchemaVersion[ConfigV1](1),
//	    confmigrate.SchemaVersionFrom[ConfigV1, ConfigV2](2, func(prev ConfigV1) ConfigV2 {
//	        return ConfigV2{Name: prev.Name, Timeout: prev.Timeout, Retries: 4}
//	    }),
//	)
//
// Then migrate documents of any registered version:
//
//	migrator := confmigrate.NewMigrator("version", chain)
//	cfg, res, err := confmigrate.Migrate[ConfigV2](migrator, document.FromToml(f))
//
// The input format is delegated entirely to the [document] package; YAML,
// JSON and TOML documents all migrate through the same chain.
//
// # Errors
//
// Chain construction and migration never best-effort. An invalid chain
// declaration fails NewChain with a construction error and an input
// document which cannot be fully migrated fails Migrate with a typed
// error; no partial schema value is ever returned.
package confmigrate
