package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zentry/appicon/config"
	"github.com/zentry/appicon/icon"
	"github.com/zentry/appicon/journal"
	"github.com/zentry/appicon/pkg/id"
)

type generateOptions struct {
	output string
	ico    string
}

func newGenerateCmd(rc *RootConfig) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the icon to disk",
		Long: `Render the configured design and write it as a PNG.

The parent directory of the output must already exist.

Examples:
  appicon generate
  appicon generate --output build/icon.png --ico build/icon.ico`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "PNG output path (default from config)")
	cmd.Flags().StringVar(&opts.ico, "ico", "", "also write a multi-size ICO to this path")

	return cmd
}

func runGenerate(cmd *cobra.Command, rc *RootConfig, opts *generateOptions) error {
	cfg, err := rc.Load()
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output.Path = opts.output
	}
	if opts.ico != "" {
		cfg.Output.ICO = opts.ico
	}

	log, err := rc.logger(cmd, cfg)
	if err != nil {
		return err
	}

	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	d := cfg.Design
	log.WithFields(logrus.Fields{
		"size":    d.Size,
		"candles": len(d.Candles),
	}).Debug("rendering icon")

	cv, err := icon.Render(d)
	if err != nil {
		return err
	}
	data, err := icon.EncodeBytes(cv.Image())
	if err != nil {
		return err
	}

	// Everything is encoded and every target directory checked before the
	// first write, so a failing --ico leaves no PNG behind.
	var ico []byte
	if cfg.Output.ICO != "" {
		ico, err = icon.ICOBytes(d, cfg.ICOSizes())
		if err != nil {
			return err
		}
		if err := checkParent(cfg.Output.ICO); err != nil {
			return err
		}
	}
	if err := checkParent(cfg.Output.Path); err != nil {
		return err
	}

	if err := icon.WriteFile(cfg.Output.Path, data); err != nil {
		return err
	}
	if err := record(j, log, cfg.Output.Path, "png", d.Size, data); err != nil {
		return err
	}

	if ico != nil {
		if err := icon.WriteFile(cfg.Output.ICO, ico); err != nil {
			return err
		}
		if err := record(j, log, cfg.Output.ICO, "ico", maxSize(cfg), ico); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ App icon created successfully at: %s\n", cfg.Output.Path)
	fmt.Fprintf(out, "  Size: %dx%dpx\n", d.Size, d.Size)
	fmt.Fprintf(out, "  Design: %s\n", d.Description)
	return nil
}

func record(j journal.Journal, log *logrus.Logger, path, format string, size int, data []byte) error {
	rec := journal.RenderRecord{
		ID:        id.New(),
		Path:      path,
		Format:    format,
		Width:     size,
		Height:    size,
		Bytes:     int64(len(data)),
		SHA256:    icon.Checksum(data),
		CreatedAt: time.Now().UTC(),
	}

	log.WithFields(logrus.Fields{
		"run_id": rec.ID,
		"path":   rec.Path,
		"bytes":  rec.Bytes,
		"sha256": rec.SHA256,
	}).Info("wrote " + format)

	if err := j.RecordRender(rec); err != nil {
		return fmt.Errorf("record render: %w", err)
	}
	return nil
}

// checkParent fails when the directory that would hold path is missing.
func checkParent(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("write icon %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("write icon %s: %s is not a directory", path, dir)
	}
	return nil
}

func maxSize(cfg *config.Config) int {
	m := 0
	for _, s := range cfg.ICOSizes() {
		m = max(m, s)
	}
	return m
}
