// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/deckhtml/internal/catalog"
	"github.com/pdiddy/deckhtml/internal/logging"
	"github.com/pdiddy/deckhtml/internal/ppt"
	"github.com/pdiddy/deckhtml/internal/pptx"
	"github.com/pdiddy/deckhtml/pkg/types"
)

func setDefaults() {
	viper.SetDefault("render.title", "")
	viper.SetDefault("render.workers", 1)
	viper.SetDefault("render.include_notes", true)

	viper.SetDefault("parse.legacy_backend", string(types.LegacyNative))
	viper.SetDefault("parse.container_image", ppt.DefaultContainerImage)
	viper.SetDefault("parse.max_entry_size", pptx.DefaultMaxEntrySize)

	viper.SetDefault("catalog.enabled", false)
	viper.SetDefault("catalog.dir", defaultCatalogDir())
	viper.SetDefault("catalog.max_results", catalog.DefaultMaxResults)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

func defaultCatalogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deckhtml"
	}
	return filepath.Join(home, ".local", "share", "deckhtml")
}

// loadConfig reads every section from viper.
func loadConfig() types.Config {
	return types.Config{
		Render: types.RenderConfig{
			Title:        viper.GetString("render.title"),
			Workers:      viper.GetInt("render.workers"),
			IncludeNotes: viper.GetBool("render.include_notes"),
		},
		Parse: types.ParseConfig{
			LegacyBackend:  types.LegacyBackend(viper.GetString("parse.legacy_backend")),
			ContainerImage: viper.GetString("parse.container_image"),
			MaxEntrySize:   viper.GetInt64("parse.max_entry_size"),
		},
		Catalog: types.CatalogConfig{
			Enabled:    viper.GetBool("catalog.enabled"),
			Dir:        viper.GetString("catalog.dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}

// newLogger builds the stderr logger. An invalid level or format is a
// usage error.
func newLogger(w io.Writer, cfg types.LogConfig) (*slog.Logger, error) {
	logger, err := logging.New(w, cfg)
	if err != nil {
		return nil, usage(err)
	}
	return logger, nil
}
