package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/quarantine-vault/internal/service"
)

const defaultTokenTTL = 12 * time.Hour

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <actor>",
		Short: "Mint a moderator bearer token",
		Long: `Prints a bearer token for the moderation API whose subject is <actor>.
Requires APP_TOKEN_SIGN_KEY.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			token, err := service.NewAuthService(cfg.App, log).CreateToken(cmd.Context(), args[0], ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")

	return cmd
}
