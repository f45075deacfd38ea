package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	figmaviewer "github.com/darkxdd/figma-metadata-viewer-sub000"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-metadata-viewer",
		Short: "Extract a simplified node tree and design tokens from Figma files",
		Long: "Walks a Figma design document once, producing a size-reduced node tree,\n" +
			"a deduplicated store of style values, and categorized design tokens\n" +
			"rendered as CSS custom properties.",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: run,
	}

	f := rootCmd.Flags()
	f.StringP("url", "u", "", "Figma file URL")
	f.StringP("token", "t", "", "Figma personal access token")
	f.StringP("input", "i", "", "Local design document path or glob (overrides --url)")
	f.StringSliceP("node-ids", "n", nil, "Node IDs to extract instead of the entire file")
	f.String("extractors", "all", "Extractor set: all, layout-text, content, visuals")
	f.Int("max-depth", 0, "Maximum traversal depth (0 = unbounded)")
	f.StringP("output-dir", "o", ".", "Output directory for design.json, tokens.css, design.md")
	f.Bool("download-images", false, "Download image fills referenced by the tree")
	f.String("image-dir", "figma-assets", "Output directory for downloaded images")
	f.Bool("markdown", true, "Write the markdown design report")
	f.Bool("quiet", false, "Suppress progress output")
	f.String("config", ".figma-metadata-viewer.yaml", "Config file path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-metadata-viewer version %s\n", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := buildConfig()

	cyan := color.New(color.FgCyan)
	if !cfg.Quiet {
		cyan.Println("\n🎨 Figma Metadata Viewer")
		cyan.Println("========================")
	}

	extractors, err := extractorSet(cfg.Extractors)
	if err != nil {
		return err
	}

	var logger figmaviewer.Logger
	if !cfg.Quiet {
		logger = &cliLogger{}
	}

	if cfg.Input != "" {
		return runLocal(cfg, extractors, logger)
	}

	if cfg.URL == "" || cfg.Token == "" {
		return fmt.Errorf("either --input or both --url and --token are required")
	}

	result, err := figmaviewer.Run(figmaviewer.Options{
		AccessToken:    cfg.Token,
		FileURL:        cfg.URL,
		NodeIDs:        cfg.NodeIDs,
		Extractors:     extractors,
		MaxDepth:       cfg.MaxDepth,
		DownloadImages: cfg.DownloadImages,
		ImageDir:       cfg.ImageDir,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	return writeOutputs(cfg, result, "")
}

// runLocal processes one or many local design documents. The input may be a
// direct path or a doublestar glob matching several documents.
func runLocal(cfg config, extractors []simplify.ExtractorFn, logger figmaviewer.Logger) error {
	paths, err := resolveInputs(cfg.Input)
	if err != nil {
		return err
	}

	for _, path := range paths {
		result, err := figmaviewer.Run(figmaviewer.Options{
			InputPath:  path,
			Extractors: extractors,
			MaxDepth:   cfg.MaxDepth,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		// Prefix outputs with the document name when batching.
		prefix := ""
		if len(paths) > 1 {
			prefix = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "."
		}
		if err := writeOutputs(cfg, result, prefix); err != nil {
			return err
		}
	}

	return nil
}

func resolveInputs(pattern string) ([]string, error) {
	if _, err := os.Stat(pattern); err == nil {
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no design documents match %q", pattern)
	}
	return matches, nil
}

func extractorSet(name string) ([]simplify.ExtractorFn, error) {
	switch name {
	case "", "all":
		return simplify.AllExtractors(), nil
	case "layout-text":
		return simplify.LayoutAndTextExtractors(), nil
	case "content":
		return simplify.ContentExtractors(), nil
	case "visuals":
		return simplify.VisualExtractors(), nil
	default:
		return nil, fmt.Errorf("unknown extractor set %q (must be all, layout-text, content, or visuals)", name)
	}
}

func writeOutputs(cfg config, result *figmaviewer.Result, prefix string) error {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory %q: %w", cfg.OutputDir, err)
	}

	green := color.New(color.FgGreen)

	jsonData, err := result.JSON()
	if err != nil {
		return fmt.Errorf("serialize simplified tree: %w", err)
	}
	jsonPath := filepath.Join(cfg.OutputDir, prefix+"design.json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	cssPath := filepath.Join(cfg.OutputDir, prefix+"tokens.css")
	if err := os.WriteFile(cssPath, []byte(result.CSS+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", cssPath, err)
	}

	written := []string{jsonPath, cssPath}

	if cfg.WriteMarkdown {
		mdPath := filepath.Join(cfg.OutputDir, prefix+"design.md")
		if err := os.WriteFile(mdPath, []byte(result.Markdown), 0644); err != nil {
			return fmt.Errorf("write %s: %w", mdPath, err)
		}
		written = append(written, mdPath)
	}

	if !cfg.Quiet {
		stats := result.Simplify.GlobalVars.Statistics()
		cyan := color.New(color.FgCyan)
		cyan.Println("\n📊 Extraction Summary:")
		fmt.Printf("  • Root nodes: %d\n", len(result.Simplify.Nodes))
		fmt.Printf("  • Distinct style values: %d\n", stats.Count)
		fmt.Printf("  • Deduplicated references: %d\n", stats.DuplicateHits)
		fmt.Printf("  • Design tokens: %d\n", result.Tokens.Count())
		if len(result.Assets) > 0 {
			fmt.Printf("  • Downloaded images: %d\n", len(result.Assets))
		}

		green.Printf("\n✨ Wrote %s\n\n", strings.Join(written, ", "))
	}

	return nil
}

// cliLogger implements figmaviewer.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
