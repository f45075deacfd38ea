package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// config holds the fully resolved CLI configuration.
type config struct {
	URL            string
	Token          string
	Input          string // local document path or glob; overrides URL
	NodeIDs        []string
	Extractors     string // all | layout-text | content | visuals
	MaxDepth       int
	OutputDir      string
	DownloadImages bool
	ImageDir       string
	WriteMarkdown  bool
	Quiet          bool
}

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".figma-metadata-viewer.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// FMV_TOKEN -> token, FMV_IMAGE_DIR -> image-dir, matching the flag keys
	// posflag stores so all three providers layer onto the same keys.
	if err := k.Load(env.Provider("FMV_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "FMV_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the resolved configuration from koanf state.
func buildConfig() config {
	cfg := config{
		URL:            getString("url", ""),
		Token:          getString("token", ""),
		Input:          getString("input", ""),
		Extractors:     getString("extractors", "all"),
		MaxDepth:       getInt("max-depth", 0),
		OutputDir:      getString("output-dir", "."),
		DownloadImages: getBool("download-images", false),
		ImageDir:       getString("image-dir", "figma-assets"),
		WriteMarkdown:  getBool("markdown", true),
		Quiet:          getBool("quiet", false),
	}

	if ids := k.Strings("node-ids"); len(ids) > 0 {
		cfg.NodeIDs = ids
	}

	return cfg
}

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
