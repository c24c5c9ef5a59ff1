package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/zentry/appicon/journal"
)

func newHistoryCmd(rc *RootConfig) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List renders recorded in the journal",
		Long: `Print the render journal, newest first.

The journal is configured with journal.type (csv or sqlite) and journal.path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}
			if cfg.Journal.Type == "" || cfg.Journal.Type == "none" {
				return fmt.Errorf("no journal configured (set journal.type and journal.path)")
			}

			// Opening creates the file, so a mistyped path would
			// otherwise list an empty history.
			if _, err := os.Stat(cfg.Journal.Path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("journal not found: %s", cfg.Journal.Path)
				}
				return fmt.Errorf("open journal: %w", err)
			}

			j, err := journal.Open(cfg.Journal)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()

			recs, err := j.Renders(limit)
			if err != nil {
				return fmt.Errorf("list renders: %w", err)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Created", "Format", "Size", "Bytes", "SHA-256", "Path"})
			for _, r := range recs {
				table.Append([]string{
					r.ID,
					r.CreatedAt.Local().Format(time.DateTime),
					r.Format,
					fmt.Sprintf("%dx%d", r.Width, r.Height),
					strconv.FormatInt(r.Bytes, 10),
					shortSum(r.SHA256),
					r.Path,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of renders to show (0 for all)")
	return cmd
}

func shortSum(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
