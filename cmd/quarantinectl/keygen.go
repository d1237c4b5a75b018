package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/quarantine-vault/internal/crypto"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a fresh base64 master key",
		Long: `Prints a random 32-byte key, base64 encoded, suitable for APP_MASTER_KEY.
Changing the master key of an existing vault makes its content unreadable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := crypto.GenerateMasterKey()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}
