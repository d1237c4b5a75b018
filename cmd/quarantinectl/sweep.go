package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire every overdue record once",
		Long: `Deletes the stored ciphertext of every QUARANTINED or UNDER_REVIEW record
whose expiry time has passed and marks those records EXPIRED. Intended to be
run from cron when the server's in-process sweep is disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				now = t
			}

			services, closer, err := opts.openServices(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			count, err := services.QuarantineService.SweepExpired(cmd.Context(), now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "expired %d record(s)\n", count)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "sweep as of this RFC 3339 time instead of now")

	return cmd
}
