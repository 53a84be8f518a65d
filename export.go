package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plaindeck/internal/config"
	"plaindeck/internal/raster"
	"plaindeck/internal/slide"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render every slide to a PNG image",
		Long: `Render each slide of a presentation to slide-NNN.png using the same
layout as the viewer.

Example:
  plaindeck export talk.txt --out build/ --width 1280 --height 720`,
		Args: exactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output directory (overrides config)")
	cmd.Flags().Int("width", 0, "Image width in pixels (overrides config)")
	cmd.Flags().Int("height", 0, "Image height in pixels (overrides config)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}
	applyExportFlags(cmd, &cfg.Export)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newStderrLogger(cmd, cfg)
	if err != nil {
		return err
	}

	slides, err := slide.ParseFile(path)
	if err != nil {
		return err
	}

	// Colors were checked by Validate.
	fg, _ := config.ParseHexColor(cfg.Export.Foreground)
	bg, _ := config.ParseHexColor(cfg.Export.Background)

	exporter := &raster.Exporter{
		Width:      cfg.Export.Width,
		Height:     cfg.Export.Height,
		Foreground: fg,
		Background: bg,
		Logger:     logger,
	}
	files, err := exporter.Export(cmd.Context(), slides, cfg.Export.Output)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d slides to %s\n", len(files), cfg.Export.Output)
	return nil
}

func applyExportFlags(cmd *cobra.Command, export *config.ExportConfig) {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		export.Output = out
	}
	if w, _ := cmd.Flags().GetInt("width"); w != 0 {
		export.Width = w
	}
	if h, _ := cmd.Flags().GetInt("height"); h != 0 {
		export.Height = h
	}
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration to a file",
		Long: `Write the built-in configuration as TOML so it can be edited.
Without a path the global config location is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.NewLoader().GlobalPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no config directory found; pass a path")
			}

			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}
