// Package cmd provides the CLI commands for faang.
package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbmrq/faang/internal/catalog"
	"github.com/dbmrq/faang/internal/config"
	"github.com/dbmrq/faang/internal/logging"
	"github.com/dbmrq/faang/internal/render"
	"github.com/dbmrq/faang/internal/version"
)

// app holds the state shared by every command in one invocation.
type app struct {
	configPath string
	verbose    bool
	noColor    bool
	output     config.OutputFormat

	cfg     *config.Config
	catalog *catalog.Catalog
}

// NewRootCmd builds the faang command tree over cat.
func NewRootCmd(cat *catalog.Catalog) *cobra.Command {
	a := &app{catalog: cat}

	root := &cobra.Command{
		Use:   "faang",
		Short: "🚀 Awesome FAANG Interview Resources CLI",
		Long: `🚀 Awesome FAANG Interview Resources CLI

Browse a curated catalog of books, courses, platforms and tools for
software engineering interviews. Filter by category, type and price,
search by keyword, and follow the 16-week preparation roadmap.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.CloseGlobal()
		},
	}
	root.SetVersionTemplate("FAANG Interview CLI version: {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .faang/config.yaml)")
	flags.BoolVar(&a.verbose, "verbose", false, "log debug output to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.VarP(newEnumFlag("output format", &a.output, config.ParseOutputFormat, config.OutputFormats),
		"output", "o", "output format: table, json or yaml")
	registerCompletion(root, "output", config.OutputFormats)

	root.AddCommand(
		a.newListCmd(),
		a.newSearchCmd(),
		a.newShowCmd(),
		a.newCategoriesCmd(),
		a.newStatsCmd(),
		a.newRoadmapCmd(),
		a.newBrowseCmd(),
		a.newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against the built-in catalog.
func Execute(ctx context.Context) error {
	return NewRootCmd(catalog.Default()).ExecuteContext(ctx)
}

// setup loads configuration, applies the global flags on top of it and
// starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return config.UserError(err)
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = lvl
	logConfig.LogDir = cfg.Log.Dir
	logConfig.JSONFormat = cfg.Log.JSON
	logConfig.Console = cfg.Log.Console || a.verbose
	logConfig.ConsoleWriter = cmd.ErrOrStderr()
	if err := logging.InitGlobal(logConfig); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.NewString())
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	cmd.SetContext(ctx)

	logging.FromContext(ctx).Debug("command started",
		"args", args,
		"format", cfg.Output.Format.String(),
		"color", cfg.Output.Color,
	)
	return nil
}

// printer returns a Printer writing to the command's output.
func (a *app) printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), render.Options{
		Format:           a.cfg.Output.Format,
		Color:            a.cfg.Output.Color,
		DescriptionWidth: a.cfg.Output.DescriptionWidth,
	})
}

// logger returns the global logger tagged with the command's run ID.
func logger(cmd *cobra.Command) *logging.Logger {
	return logging.FromContext(cmd.Context())
}
