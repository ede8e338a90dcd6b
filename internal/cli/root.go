package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/demo"
	"github.com/smartwork/dashboard/internal/entrypoint"
	"github.com/smartwork/dashboard/internal/logging"
	"github.com/smartwork/dashboard/internal/messaging"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/store"
)

// cliWorkspaceID identifies the throwaway workspace offline commands run in.
const cliWorkspaceID = "cli"

type globalOptions struct {
	envFile string
	verbose bool
}

// NewRootCommand builds the smartwork command tree. Running it without a
// subcommand starts the HTTP server.
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "smartwork",
		Short:         "Business management dashboard: HR, clients, inventory, billing and payroll",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, version)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Path to a .env file (default: ./.env when present)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newServeCmd(opts, version),
		newImportCmd(opts),
		newExportCmd(opts),
		newTemplateCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newServeCmd(opts *globalOptions, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, version)
		},
	}
}

func runServe(opts *globalOptions, version string) error {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.Run(cfg, version, logger)
}

// offline is what the import, export and template commands work with: the
// domain services and a single in-memory workspace.
type offline struct {
	cfg      *config.Config
	logger   *zap.Logger
	services *services.Services
}

func newOffline(opts *globalOptions) (*offline, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = logging.New(config.Logging{Level: "debug", Format: "console"})
		if err != nil {
			return nil, err
		}
	}

	// Messages are never sent from the CLI; local delivery keeps the wiring
	// identical to the server without network access.
	sender := messaging.NewDispatcher(nil, logging.Named(logger, "messaging"))
	svc := services.New(cfg, sender, services.Deps{Logger: logging.Named(logger, "services")})
	return &offline{cfg: cfg, logger: logger, services: svc}, nil
}

func (o *offline) workspace(seeded bool) *store.Workspace {
	if seeded && o.cfg.Global.DemoSeed {
		return store.NewWorkspace(cliWorkspaceID, demo.Dataset())
	}
	return store.NewWorkspace(cliWorkspaceID, demo.Empty())
}
