package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	arm5sheet "github.com/alnah/go-arm5sheet"
	"github.com/alnah/go-arm5sheet/internal/assets"
	"github.com/alnah/go-arm5sheet/internal/config"
)

// run executes one build: read config and inputs, generate every fragment,
// splice them into the templates, write the outputs. Any failure aborts
// before the first output file is written.
func run(flags *buildFlags) error {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}

	logf := func(string, ...any) {}
	if flags.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	in, err := loadInput(cfg)
	if err != nil {
		return err
	}

	logf("generating sheet fragments")
	parts, err := arm5sheet.NewGenerator().Generate(context.Background(), in)
	if err != nil {
		return err
	}

	htmlTemplate, err := os.ReadFile(cfg.Template.HTML)
	if err != nil {
		return fmt.Errorf("reading HTML template: %w", err)
	}
	cssTemplate, err := os.ReadFile(cfg.Template.CSS)
	if err != nil {
		return fmt.Errorf("reading CSS template: %w", err)
	}

	// Render both files before writing either, so a bad slot never leaves a
	// half-updated output directory behind.
	logf("rendering %s", cfg.Template.HTML)
	htmlOut, err := renderSlots(string(htmlTemplate), htmlSlot, parts)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Template.HTML, err)
	}
	logf("rendering %s", cfg.Template.CSS)
	cssOut, err := renderSlots(string(cssTemplate), cssSlot, parts)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Template.CSS, err)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	htmlPath := filepath.Join(cfg.Output.Dir, cfg.Output.HTML)
	if err := os.WriteFile(htmlPath, []byte(htmlOut), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	cssPath := filepath.Join(cfg.Output.Dir, cfg.Output.CSS)
	if err := os.WriteFile(cssPath, []byte(cssOut), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cssPath, err)
	}

	logf("wrote %s and %s", htmlPath, cssPath)
	return nil
}

// loadInput assembles the generator input from config and asset files.
func loadInput(cfg *config.Config) (arm5sheet.Input, error) {
	var in arm5sheet.Input

	colorCSV, err := assets.ColorTable(cfg.Inputs.Colors)
	if err != nil {
		return in, fmt.Errorf("color table: %w", err)
	}
	colors, err := arm5sheet.ReadColorTable(strings.NewReader(colorCSV))
	if err != nil {
		return in, fmt.Errorf("color table: %w", err)
	}

	doc, err := assets.Documentation(cfg.Inputs.Documentation)
	if err != nil {
		return in, fmt.Errorf("documentation: %w", err)
	}

	in = arm5sheet.Input{
		Documentation: doc,
		Colors:        colors,
		DisableMarker: cfg.Alerts.Marker,
	}
	for _, b := range cfg.Alerts.Banners {
		in.Alerts = append(in.Alerts, arm5sheet.AlertSpec{
			Title: b.Title,
			Text:  b.Text,
			Level: arm5sheet.AlertLevel(b.Level),
			ID:    b.ID,
		})
	}
	return in, nil
}
