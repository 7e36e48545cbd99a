// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/z5labs/confmigrate"
	"github.com/z5labs/confmigrate/document"
	"github.com/z5labs/confmigrate/migrateslog"
)

type ConfigV1 struct {
	Name    string `config:"name"`
	Timeout uint32 `config:"timeout"`
}

type ConfigV2 struct {
	Name    string `config:"name"`
	Timeout uint32 `config:"timeout"`
	Retries uint8  `config:"retries"`
}

func configV2FromV1(prev ConfigV1) ConfigV2 {
	return ConfigV2{
		Name:    prev.Name,
		Timeout: prev.Timeout,
		Retries: 4,
	}
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	chain, err := confmigrate.NewChain(
		confmigrate.SchemaVersion[ConfigV1](1),
		confmigrate.SchemaVersionFrom[ConfigV1, ConfigV2](2, configV2FromV1),
	)
	if err != nil {
		log.Error("failed to build migration chain", slog.String("error", err.Error()))
		os.Exit(1)
	}

	migrator := confmigrate.NewMigrator("version", chain)

	cfg, res, err := confmigrate.Migrate[ConfigV2](migrator, document.FromToml(strings.NewReader(`
version = 1
name = "MyApp"
timeout = 60
`)))
	if err != nil {
		log.Error(
			"failed to read and/or migrate config",
			migrateslog.VersionKey("version"),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	log.Info(
		"read config",
		migrateslog.SourceVersion(res.SourceVersion),
		migrateslog.LatestVersion(chain.Latest()),
		migrateslog.Migrated(res.Migrated),
	)

	fmt.Printf("%+v\n", cfg)
}
