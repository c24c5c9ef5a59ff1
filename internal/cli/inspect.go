package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zentry/appicon/icon"
)

func newInspectCmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [path]",
		Short: "Describe a rendered icon and check it is reproducible",
		Long: `Decode a PNG and print its size, color model, checksum and sample pixels.

The file is compared byte for byte with a fresh render of the configured
design. Defaults to the configured output path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			path := cfg.Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			info, data, err := icon.InspectFile(path)
			if err != nil {
				return err
			}

			cv, err := icon.Render(cfg.Design)
			if err != nil {
				return err
			}
			fresh, err := icon.EncodeBytes(cv.Image())
			if err != nil {
				return err
			}
			reproducible := "no"
			if bytes.Equal(fresh, data) {
				reproducible = "yes"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path: %s\n", path)
			fmt.Fprintf(out, "  Size: %dx%dpx\n", info.Width, info.Height)
			fmt.Fprintf(out, "  Color model: %s\n", info.ColorModel)
			fmt.Fprintf(out, "  SHA-256: %s\n", info.SHA256)
			fmt.Fprintf(out, "  Corner: %s\n", info.Corner)
			fmt.Fprintf(out, "  Center: %s\n", info.Center)
			fmt.Fprintf(out, "  Reproducible: %s\n", reproducible)
			return nil
		},
	}
}
