// quarantinectl is the operator CLI of the quarantine vault: one-shot
// expiry sweeps for cron, metadata lookups, key generation, migrations and
// moderator token minting.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/quarantine-vault/internal/config"
	"github.com/MKhiriev/quarantine-vault/internal/logger"
	"github.com/MKhiriev/quarantine-vault/internal/service"
	"github.com/MKhiriev/quarantine-vault/internal/store"
	"github.com/MKhiriev/quarantine-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// rootOptions are the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
	buildInfo  models.AppBuildInfo
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	root := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{buildInfo: buildInfo}

	rootCmd := &cobra.Command{
		Use:   "quarantinectl",
		Short: "Operate a quarantine vault",
		Long: `quarantinectl runs maintenance tasks against the vault's metadata
database and object store using the server configuration (.env file,
environment variables and the optional JSON or YAML file).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newSweepCmd(opts),
		newShowCmd(opts),
		newKeygenCmd(),
		newMigrateCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

// loadConfig reads the server configuration. Logs go to stderr so that
// command output on stdout stays machine readable.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.StructuredConfig, *logger.Logger, error) {
	cfg, err := config.GetCLIConfig(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = o.version()
	}

	log := logger.NewLogger("quarantinectl", logger.WithOutput(cmd.ErrOrStderr()), logger.WithLevel(o.logLevel))
	return cfg, log, nil
}

// openServices connects the stores and builds the service layer. Metrics
// are registered with a private registry that is never exported.
func (o *rootOptions) openServices(cmd *cobra.Command) (*service.Services, io.Closer, error) {
	cfg, log, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	storages, err := store.NewStorages(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storages: %w", err)
	}

	services, err := service.NewServices(storages, cfg, prometheus.NewRegistry(), log)
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("error creating services: %w", err)
	}

	return services, storages, nil
}

func (o *rootOptions) version() string {
	return o.buildInfo.VersionOr("dev")
}
