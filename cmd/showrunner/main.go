package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/showrunner-hq/showrunner-client/internal/app"
	"github.com/showrunner-hq/showrunner-client/internal/config"
	"github.com/showrunner-hq/showrunner-client/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "showrunner: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	env        string
	token      string
	baseURL    string
	paramsFile string
	data       string
	output     string
	logLevel   string
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newRootCommand(config.Load).ExecuteContext(ctx)
}

// loadFunc produces the base configuration. It only runs for RPC commands so
// help and list work with a broken environment.
type loadFunc func() (*config.Config, error)

func newRootCommand(load loadFunc) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "showrunner",
		Short:         "Call the showrunner conference backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.env, "env", "", "deployment environment (\"dev\" targets localhost:4060)")
	pf.StringVar(&f.token, "token", "", "bearer token sent as Authorization header")
	pf.StringVar(&f.baseURL, "base-url", "", "override the resolved base URL")
	pf.StringVarP(&f.paramsFile, "params", "p", "", "JSON or YAML file with the RPC params (JSON times must be RFC 3339; YAML also accepts dates)")
	pf.StringVarP(&f.data, "data", "d", "", "inline JSON or YAML params")
	pf.StringVarP(&f.output, "output", "o", app.FormatJSON, "output format: json or yaml")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newListCommand())
	for _, rpc := range app.Catalogue() {
		root.AddCommand(newRPCCommand(load, f, rpc))
	}
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available RPCs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, rpc := range app.Catalogue() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", rpc.FullName(), rpc.Description)
			}
			return nil
		},
	}
}

func newRPCCommand(load loadFunc, f *flags, rpc app.RPC) *cobra.Command {
	return &cobra.Command{
		Use:     rpc.Name,
		Aliases: []string{app.KebabName(rpc.Name)},
		Short:   rpc.Description,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			effective := applyFlags(*cfg, f)

			sugar, err := logger.Init(&effective)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Close()

			logger.DebugObj("showrunner starting", "config", effective.Redacted())

			runner, err := app.NewRunner(&effective, logger.New(sugar), cmd.OutOrStdout())
			if err != nil {
				logger.ErrorObj("failed to initialize runner", "error", err.Error())
				return err
			}
			return runner.Run(cmd.Context(), app.Request{
				RPC:        rpc.Name,
				ParamsFile: f.paramsFile,
				ParamsData: f.data,
				Output:     f.output,
			})
		},
	}
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(cfg config.Config, f *flags) config.Config {
	if f.env != "" {
		cfg.Environment = f.env
	}
	if f.token != "" {
		cfg.Token = f.token
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg
}
