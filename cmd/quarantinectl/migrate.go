package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/quarantine-vault/internal/store"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := store.NewDB(cmd.Context(), cfg.Storage.DB, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", db.Dialect())
			return nil
		},
	}
}
