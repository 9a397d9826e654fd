// Command brigade is a kitchen station registry tool.
//
// Usage:
//
//	brigade [--layout kitchen.yaml] [--verbose|--quiet] <command>
//
// Every invocation builds a fresh kitchen from the layout (the built-in demo
// kitchen when none is given) and runs one command against it.
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/brigade/internal/config"
	"github.com/hammamikhairi/brigade/internal/display"
	"github.com/hammamikhairi/brigade/internal/layout"
	"github.com/hammamikhairi/brigade/internal/logger"
	"github.com/hammamikhairi/brigade/internal/menu"
	"github.com/hammamikhairi/brigade/internal/registry"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.teardown()
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once the root pre-run has
// loaded config and built the kitchen.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	catalog *menu.Catalog
	reg     *registry.Registry
	out     *display.Printer
	closers []io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "brigade",
		Short:         "Inspect and operate a kitchen's stations",
		Long:          `Brigade loads a kitchen layout (dishes, stations, stock) and answers fulfillment questions, prepares dishes, and runs kitchen scripts against it.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), v, cfgFile, cmd)
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./brigade.yaml if present)")
	root.PersistentFlags().StringP("layout", "l", "",
		"kitchen layout file (default: built-in demo kitchen)")
	root.PersistentFlags().Bool("verbose", false, "enable verbose/debug logging")
	root.PersistentFlags().Bool("quiet", false, "disable all logging")
	root.PersistentFlags().String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	root.PersistentFlags().Bool("no-color", false, "disable styled output")

	_ = v.BindPFlag("layout", root.PersistentFlags().Lookup("layout"))
	_ = v.BindPFlag("log_file", root.PersistentFlags().Lookup("log-file"))

	root.AddCommand(
		newStationsCmd(a),
		newMenuCmd(a),
		newFulfillCmd(a),
		newPrepareCmd(a),
		newRunCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context, v *viper.Viper, cfgFile string, cmd *cobra.Command) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = logger.LevelVerbose.String()
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		cfg.LogLevel = logger.LevelOff.String()
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	// Direct logs to a file when asked so command output stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			a.closers = append(a.closers, f)
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	a.log = logger.New(level, logOut)
	a.out = display.NewPrinter(cmd.OutOrStdout(), cfg.Color)

	kitchen := layout.Default()
	if cfg.Layout != "" {
		if kitchen, err = layout.Load(cfg.Layout); err != nil {
			return err
		}
	}

	a.catalog = menu.NewCatalog(a.log)
	a.reg = registry.New(a.log)
	if err := kitchen.Build(ctx, a.catalog, a.reg, a.log); err != nil {
		return fmt.Errorf("building kitchen: %w", err)
	}
	return nil
}

func (a *app) teardown() {
	if a.reg != nil {
		a.reg.Clear()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
